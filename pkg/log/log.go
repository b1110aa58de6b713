package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/lmittmann/tint"
	"github.com/rs/zerolog"
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatTint    = "tint"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
}

// New returns a logr.Logger writing to w. Level is a zerolog level name
// ("debug", "info", ...); format is one of FormatConsole, FormatJSON or
// FormatTint.
func New(w io.Writer, level, format string) (logr.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logr.Discard(), fmt.Errorf("log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch format {
	case FormatConsole, "":
		zl := Zerolog(zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02T15:04:05.000Z07:00"}, lvl)
		return zerologr.New(zl), nil
	case FormatJSON:
		zl := Zerolog(w, lvl)
		return zerologr.New(zl), nil
	case FormatTint:
		h := tint.NewHandler(w, &tint.Options{Level: slogLevel(lvl), TimeFormat: time.Kitchen})
		return logr.FromSlogHandler(h), nil
	default:
		return logr.Discard(), fmt.Errorf("unknown log format %q", format)
	}
}

// Zerolog creates a timestamped zerolog logger.
func Zerolog(w io.Writer, lvl zerolog.Level) *zerolog.Logger {
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &logger
}

// slogLevel maps a zerolog level to slog. Verbosity 1 in logr is debug in
// both.
func slogLevel(lvl zerolog.Level) slog.Level {
	switch {
	case lvl <= zerolog.DebugLevel:
		return slog.LevelDebug
	case lvl == zerolog.InfoLevel:
		return slog.LevelInfo
	case lvl == zerolog.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
