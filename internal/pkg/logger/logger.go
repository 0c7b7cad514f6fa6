package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
	// With returns a child logger that attaches key=value to every record.
	With(key string, value any) Logger
}

// Options configures New.
type Options struct {
	Level   string // debug, info, warn, error
	Pretty  bool   // human readable console output instead of JSON
	Service string
}

type zeroLogger struct {
	zl zerolog.Logger
}

// New creates a zerolog backed Logger writing to stdout.
func New(opts Options) Logger {
	var w io.Writer = os.Stdout
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, opts)
}

// NewWithWriter creates a Logger that writes JSON records to w.
func NewWithWriter(w io.Writer, opts Options) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return &zeroLogger{zl: ctx.Logger()}
}

// NewNop returns a Logger that discards everything. Useful in tests.
func NewNop() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}

// Error logs an error message. err may be nil.
func (l *zeroLogger) Error(msg string, err error) {
	ev := l.zl.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

// Warn logs a warning message.
func (l *zeroLogger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Info logs an informational message.
func (l *zeroLogger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Debug logs a debug message.
func (l *zeroLogger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *zeroLogger) With(key string, value any) Logger {
	return &zeroLogger{zl: l.zl.With().Interface(key, value).Logger()}
}
