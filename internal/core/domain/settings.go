package domain

import "time"

const unknownDescription = "Unknown"

// Default values for application settings.
const (
	DefaultAPIBaseURL       = "https://paperswithcode.com/api/v1"
	DefaultAPITimeout       = 30 * time.Second
	DefaultDocumentTimeout  = 120 * time.Second
	DefaultMaxDocumentBytes = 100 * 1024 * 1024
	DefaultServerAddr       = ":8080"

	// DefaultDocumentUserAgent mimics a desktop browser; several paper hosts
	// refuse requests without one.
	DefaultDocumentUserAgent = "Mozilla/5.0 (X11; Windows; Windows x86_64) AppleWebKit/537.36" +
		" (KHTML, like Gecko) Chrome/103.0.5060.114 Safari/537.36"
)

// LogFormat defines how log lines are rendered.
type LogFormat string

// Available log formats.
const (
	// LogFormatConsole renders human-readable lines.
	LogFormatConsole LogFormat = "console"

	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// IsValid returns true if the log format is recognised.
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatConsole, LogFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f LogFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f LogFormat) Description() string {
	switch f {
	case LogFormatConsole:
		return "Console (human readable)"
	case LogFormatJSON:
		return "JSON (one object per line)"
	default:
		return unknownDescription
	}
}

// APISettings configures the research API client.
type APISettings struct {
	// BaseURL is the API root every path template is appended to.
	BaseURL string

	// Timeout bounds a single API request.
	Timeout time.Duration
}

// DocumentSettings configures document ingestion.
type DocumentSettings struct {
	// Timeout bounds a single document fetch.
	Timeout time.Duration

	// UserAgent is sent with document fetches.
	UserAgent string

	// MaxBytes caps the size of a fetched document.
	MaxBytes int64
}

// ServerSettings configures the MCP HTTP transport.
type ServerSettings struct {
	// Addr is the listen address for streamable HTTP mode.
	Addr string
}

// LogSettings configures logging.
type LogSettings struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string

	// Format is the output format.
	Format LogFormat
}

// AppSettings holds all application settings.
type AppSettings struct {
	// API holds research API settings.
	API APISettings

	// Document holds document ingestion settings.
	Document DocumentSettings

	// Server holds MCP server settings.
	Server ServerSettings

	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Document: DocumentSettings{
			Timeout:   DefaultDocumentTimeout,
			UserAgent: DefaultDocumentUserAgent,
			MaxBytes:  DefaultMaxDocumentBytes,
		},
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
		Log: LogSettings{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}

// AllLogFormats returns all available log formats.
func AllLogFormats() []LogFormat {
	return []LogFormat{
		LogFormatConsole,
		LogFormatJSON,
	}
}
