// Package ui sets up the console logger shared by the qseg commands.
package ui

import (
	"io"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout of console log lines.
const TimeFormat = "15:04:05.000"

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ParseLevel accepts zerolog level names case-insensitively; the empty
// string means DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "unknown log level %q", name)
	}

	return lvl, nil
}

// NewLogger returns a human-readable logger on out filtered at level.
func NewLogger(out io.Writer, level string, noColor bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	cw := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: TimeFormat,
	}

	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}

// Stderr wraps os.Stderr so that ANSI colors also render on Windows consoles.
func Stderr() io.Writer {
	return colorable.NewColorableStderr()
}
