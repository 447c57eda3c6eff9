// Package logger provides process-wide structured logging backed by zerolog.
// Output always goes to stderr by default because stdout carries the MCP
// stdio channel. The --verbose flag lowers the level to debug.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Format names accepted by Configure.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	format            = FormatConsole
	level             = zerolog.InfoLevel
	log               = build()
)

// build creates the shared logger (caller must hold the write lock or be in
// package init).
func build() zerolog.Logger {
	w := output
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: true}
	}
	lvl := level
	if verbose && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Configure sets the minimum level and output format. Unknown levels fall
// back to info and unknown formats to console.
func Configure(lvl, fmtName string) {
	mu.Lock()
	defer mu.Unlock()
	level = parseLevel(lvl)
	if strings.EqualFold(fmtName, FormatJSON) {
		format = FormatJSON
	} else {
		format = FormatConsole
	}
	log = build()
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = build()
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = build()
}

// L returns the shared logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// FromContext returns the logger attached to ctx, or the shared logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return L()
}

// Debug logs a formatted debug message.
func Debug(format string, args ...any) {
	L().Debug().Msgf(format, args...)
}

// Section logs a section header at debug level.
func Section(name string) {
	L().Debug().Str("section", name).Msg("===")
}

// Info logs a formatted informational message.
func Info(format string, args ...any) {
	L().Info().Msgf(format, args...)
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	L().Warn().Msgf(format, args...)
}

// Error logs err with a formatted message.
func Error(err error, format string, args ...any) {
	L().Error().Err(err).Msgf(format, args...)
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
