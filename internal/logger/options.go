package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Config is what New assembles from its options.
type Config struct {
	output       io.Writer
	level        zerolog.Level
	excludeParts []string
	isDev        bool
}

type Option interface {
	apply(*Config)
}

type optionFunc func(*Config)

func (f optionFunc) apply(cfg *Config) {
	f(cfg)
}

// WithLevel takes a level name as accepted by ParseLevel.
func WithLevel(level string) Option {
	return optionFunc(func(cfg *Config) {
		cfg.level = ParseLevel(level)
	})
}

// WithConsoleWriter switches between human readable lines and raw JSON.
func WithConsoleWriter(isDev bool) Option {
	return optionFunc(func(cfg *Config) {
		cfg.isDev = isDev
	})
}

func WithOutput(output io.Writer) Option {
	return optionFunc(func(cfg *Config) {
		cfg.output = output
	})
}

// WithExcludedParts hides console parts such as the level or the timestamp.
func WithExcludedParts(parts ...string) Option {
	return optionFunc(func(cfg *Config) {
		cfg.excludeParts = parts
	})
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
