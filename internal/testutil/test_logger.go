package testutil

import (
	"bytes"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewTestLogger logs everything down to debug so failing tests show what the code did.
func NewTestLogger() *zerolog.Logger {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &log
}

// NewBufferedLogger is NewTestLogger plus a buffer holding each event as a JSON line.
func NewBufferedLogger() (*zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	console := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}
	log := zerolog.New(io.MultiWriter(console, buf)).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &log, buf
}
