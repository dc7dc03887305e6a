// Package logging builds the diagnostic logger. The process table owns the
// terminal, so diagnostics default to errors only unless sent to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.ErrorLevel

// ParseLevel maps a level name to a zerolog level. The empty string selects DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// New returns a structured logger writing JSON lines to w.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", "proctop").Logger(), nil
}

// Open returns a logger appending to path, or writing to fallback when path is
// empty. The close func is always non-nil.
func Open(path, level string, fallback io.Writer) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		logger, err := New(fallback, level)
		return logger, noop, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("opening log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), noop, err
	}
	return logger, f.Close, nil
}
