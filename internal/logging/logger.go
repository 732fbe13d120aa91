package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/edvin/minio-lite-admin/internal/config"
)

// NewLogger creates a structured zerolog.Logger on stdout from the config.
// The service name is added when set.
func NewLogger(cfg *config.Config) zerolog.Logger {
	return New(os.Stdout, cfg.Logger.Level, cfg.Logger.Pretty, cfg.Server.ServiceName)
}

// New creates a logger writing to w. An unparsable level falls back to info.
func New(w io.Writer, levelStr string, pretty bool, service string) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	ctx := zerolog.New(w).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}

	logger := ctx.Logger()

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
