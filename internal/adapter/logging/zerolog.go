package logging

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"leethub-sync/internal/domain/ports"
)

// Options configures the zerolog backend.
type Options struct {
	Level string
	// Format is "json", "text" or "auto" (text on a terminal, json otherwise).
	Format string
	// File, when set, receives a JSON copy of every line with size-based rotation.
	File string
}

// ZLogger is an adapter around zerolog.Logger implementing ports.Logger.
type ZLogger struct {
	logger zerolog.Logger
}

var _ ports.Logger = (*ZLogger)(nil)

type runIDKey struct{}

// WithRunID returns a context whose log lines carry the given run id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// NewZerolog builds the process logger writing to stdout.
func NewZerolog(opts Options) zerolog.Logger {
	return newZerolog(os.Stdout, opts)
}

func newZerolog(stdout *os.File, opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var console io.Writer = stdout
	if useText(stdout, opts.Format) {
		console = zerolog.ConsoleWriter{Out: stdout, TimeFormat: "15:04:05", NoColor: !isTerminal(stdout)}
	}

	out := console
	if opts.File != "" {
		out = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func useText(stdout *os.File, format string) bool {
	switch format {
	case "text":
		return true
	case "json":
		return false
	default:
		return isTerminal(stdout)
	}
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// New creates a new ZLogger.
func New(logger zerolog.Logger) *ZLogger {
	return &ZLogger{logger: logger}
}

// Info logs an informational message.
func (l *ZLogger) Info(ctx context.Context, msg string, args ...any) {
	l.write(ctx, l.logger.Info(), msg, args)
}

// Warn logs a warning.
func (l *ZLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.write(ctx, l.logger.Warn(), msg, args)
}

// Error logs an error message.
func (l *ZLogger) Error(ctx context.Context, msg string, args ...any) {
	l.write(ctx, l.logger.Error(), msg, args)
}

func (l *ZLogger) write(ctx context.Context, event *zerolog.Event, msg string, args []any) {
	if event == nil {
		return
	}
	if ctx != nil {
		if id, ok := ctx.Value(runIDKey{}).(string); ok && id != "" {
			event = event.Str("run_id", id)
		}
	}
	if len(args) > 0 {
		event = event.Fields(args)
	}
	event.Msg(msg)
}
