package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"

	"ttsserver/config"
)

var ProviderSet = wire.NewSet(NewLogger)

type Logger struct {
	*slog.Logger
}

func NewLogger(config *config.Config) *Logger {
	return newLogger(os.Stdout, config.Log)
}

func newLogger(w io.Writer, c config.LogConfig) *Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(c.Level)}
	var h slog.Handler
	if strings.EqualFold(c.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Logger{slog.New(h)}
}

// Discard returns a logger that drops everything; used by tests.
func Discard() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))}
}

func (l *Logger) WithModule(module string) *Logger {
	return &Logger{l.With(slog.String("module", module))}
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func String(key string, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
