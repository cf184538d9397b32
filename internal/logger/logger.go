package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/smartcontractkit/scaffold/internal/constants"
)

// New builds a logger from opts. Without options it writes console lines at info level to
// stderr and leaves out the timestamp.
func New(opts ...Option) *zerolog.Logger {
	cfg := &Config{
		output:       os.Stderr,
		level:        zerolog.InfoLevel,
		excludeParts: []string{zerolog.TimestampFieldName},
		isDev:        true,
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	log := zerolog.New(cfg.output).Level(cfg.level)
	if cfg.isDev {
		log = log.Output(zerolog.ConsoleWriter{
			Out:          cfg.output,
			PartsExclude: cfg.excludeParts,
		})
	}
	return &log
}

// NewConsoleLogger is the logger every command starts with; --verbose lowers it to debug.
func NewConsoleLogger() *zerolog.Logger {
	return New(
		WithLevel(constants.DefaultLogLevel),
		WithOutput(os.Stderr),
		WithConsoleWriter(true),
	)
}
