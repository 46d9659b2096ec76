package logging

import (
	"bytes"

	"github.com/rs/zerolog"
)

// the stdlib http server logs the offending header value, which may be a
// session token, so truncate the line at the error message
var invalidHeaderValue = []byte("invalid header field value")

// FilteredHTTPLogger adapts the zerolog logger to an io.Writer for use as
// an http.Server ErrorLog, scrubbing header values from error lines.
type FilteredHTTPLogger struct {
	zerolog.Logger
}

func (l FilteredHTTPLogger) Write(b []byte) (int, error) {
	if idx := bytes.Index(b, invalidHeaderValue); idx >= 0 {
		return l.Logger.Write(b[:idx+len(invalidHeaderValue)])
	}
	return l.Logger.Write(b)
}

func NewFilteredHTTPLogger() *FilteredHTTPLogger {
	return &FilteredHTTPLogger{L.With().Logger()}
}
