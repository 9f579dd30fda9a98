package logging

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Unknown levels fall back to
// info so a typo never silences the service.
func Setup(level string, development bool) {
	SetupWriter(os.Stderr, level, development)
}

// SetupWriter is Setup with an explicit sink
func SetupWriter(out io.Writer, level string, development bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if development {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// Clip shortens s to at most limit bytes without splitting a rune, so
// user input echoed into logs stays bounded. A limit <= 0 disables clipping.
func Clip(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
