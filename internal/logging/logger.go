// Package logging provides the shared logger used by all internal packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// L is the shared logger. Packages log through the helpers below or through
// L directly for structured fields.
var L = newLogger(os.Stderr)

func newLogger(writer io.Writer) zerolog.Logger {
	if isTerminal() {
		writer = zerolog.ConsoleWriter{
			Out:         writer,
			TimeFormat:  time.Kitchen,
			FormatLevel: consoleFormatLevel,
		}
	}

	return zerolog.New(writer).With().Timestamp().Caller().Logger()
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// SetLevel of the global log filter. Accepts any level understood by
// zerolog.ParseLevel (trace, debug, info, warn, error).
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// PatchLogger sets L to write to writer for the duration of the test.
func PatchLogger(t *testing.T, writer io.Writer) {
	t.Helper()
	orig := L
	L = zerolog.New(writer).With().Timestamp().Logger()
	t.Cleanup(func() {
		L = orig
	})
}

// Debugf logs a message at the debug level.
func Debugf(format string, v ...interface{}) {
	L.Debug().CallerSkipFrame(1).Msgf(format, v...)
}

// Infof logs a message at the info level.
func Infof(format string, v ...interface{}) {
	L.Info().CallerSkipFrame(1).Msgf(format, v...)
}

// Warnf logs a message at the warn level.
func Warnf(format string, v ...interface{}) {
	L.Warn().CallerSkipFrame(1).Msgf(format, v...)
}

// Errorf logs a message at the error level.
func Errorf(format string, v ...interface{}) {
	L.Error().CallerSkipFrame(1).Msgf(format, v...)
}
