package util

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a named console logger. A nil writer means stdout;
// NO_COLOR in the environment disables ANSI colors.
func NewLogger(name string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	return zerolog.New(w).With().Timestamp().Str("logger", name).Logger()
}
