package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownOperation indicates a call to an operation that is not in the catalogue.
	ErrUnknownOperation = errors.New("unknown operation")

	// Remote Errors.

	// ErrRemote indicates the research API answered with a non-success status.
	ErrRemote = errors.New("remote service error")

	// ErrDecode indicates a response body could not be decoded.
	ErrDecode = errors.New("decode failed")

	// Document Errors.

	// ErrDocumentTooLarge indicates a fetched document exceeded the configured size limit.
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")

	// ErrUnsupportedType indicates no normaliser handles a content type.
	ErrUnsupportedType = errors.New("unsupported type")
)
