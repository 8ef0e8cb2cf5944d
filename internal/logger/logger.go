package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	base    = zerolog.New(os.Stderr).With().Timestamp().Logger()
	logFile *os.File
)

// InitLogging sets up the process logger. An empty filePath logs to stderr in
// console format, otherwise JSON lines are appended to the file.
func InitLogging(filePath, level string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		_ = Close()
		logFile = f
		w = f
	}

	SetOutput(w, lvl)
	return nil
}

// SetOutput replaces the process logger.
func SetOutput(w io.Writer, level zerolog.Level) {
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Close releases the log file opened by InitLogging, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// WithFields returns a context carrying a child logger with the given string fields.
func WithFields(ctx context.Context, fields map[string]string) context.Context {
	lc := fromContext(ctx).With()
	for k, v := range fields {
		lc = lc.Str(k, v)
	}
	l := lc.Logger()
	return l.WithContext(ctx)
}

func fromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	return &base
}

func DebugLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Debug().Msgf(format, args...)
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Info().Msgf(format, args...)
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Error().Msgf(format, args...)
}
