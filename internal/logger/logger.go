// Package logger provides structured logging for ontoline
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Debug  bool // debug level plus pretty console output
	Output io.Writer
}

// New creates the process logger. With Debug unset, output is line-oriented
// JSON at info level; with Debug set, output is pretty-printed and includes
// debug events.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Debug {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "ontoline").
		Logger()
}
