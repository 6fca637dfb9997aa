package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger carries diagnostic output. It is separate from the user-facing
// report, which is written by presentation.Printer.
type Logger struct {
	zl      zerolog.Logger
	Verbose bool
}

// New returns a console logger writing to writer. A nil writer yields a
// logger that discards everything. Verbose lowers the level to debug
// regardless of level.
func New(writer io.Writer, level zerolog.Level, verbose bool) Logger {
	if writer == nil {
		return Nop()
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return Logger{zl: zl, Verbose: verbose}
}

func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

// ParseLevel accepts zerolog level names; the empty string means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

func (l Logger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

// With returns a child logger that adds key=value to every entry.
func (l Logger) With(key, value string) Logger {
	return Logger{zl: l.zl.With().Str(key, value).Logger(), Verbose: l.Verbose}
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.zl.Debug().Dur("elapsed", elapsed).Msgf("%s finished", label)
	}
}
