package classy

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// log is the package logger for the discovery and export pipelines.
// It discards everything until SetVerbose(true) is called, so library
// consumers never see diagnostics they did not ask for.
var log = zerolog.New(io.Discard)

// SetVerbose switches debug logging on or off. Diagnostics go to stderr
// so they never pollute exported CSS on stdout.
func SetVerbose(verbose bool) {
	if verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	} else {
		log = zerolog.New(io.Discard)
	}
}
