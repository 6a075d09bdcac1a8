package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a console zerolog logger writing to w.
//
// level is parsed into a zerolog level and defaults to InfoLevel on parse
// error or when empty.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
