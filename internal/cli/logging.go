package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging configures the global logger. Logs go to w (stderr) so they
// never mix with command output.
func setupLogging(w io.Writer, verbose, json bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	} else if json {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if json {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
}
