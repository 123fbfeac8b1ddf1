package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/beNeighb/backend/config"
)

// Logger wraps slog. The zero value logs through slog's default handler,
// which keeps it usable in tests without any setup.
type Logger struct {
	base *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Development {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{base: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) slog() *slog.Logger {
	if l == nil || l.base == nil {
		return slog.Default()
	}
	return l.base
}

func (l *Logger) Debug(msg string, args ...any) { l.slog().Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog().Error(msg, args...) }

func (l *Logger) Infof(format string, args ...any) {
	l.slog().Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.slog().Error(fmt.Sprintf(format, args...))
}
