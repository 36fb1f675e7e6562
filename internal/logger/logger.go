package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var (
	ErrLoggerInvalidLogLevel  = fmt.Errorf("invalid log level")
	ErrLoggerInvalidLogFormat = fmt.Errorf("invalid log format")
)

type options struct {
	out io.Writer
}

func WithWriter(w io.Writer) func(*options) {
	return func(o *options) {
		o.out = w
	}
}

// NewLogger builds the process logger. Format is one of json, text or tint.
func NewLogger(logLevel, logFormat string, opts ...func(*options)) (*slog.Logger, error) {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	slogLevel, err := getSlogLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: slogLevel})), nil
	case "text":
		return slog.New(slog.NewTextHandler(o.out, &slog.HandlerOptions{Level: slogLevel})), nil
	case "tint":
		return slog.New(tint.NewHandler(o.out, &tint.Options{Level: slogLevel, TimeFormat: time.TimeOnly})), nil
	}

	return nil, errors.Join(ErrLoggerInvalidLogFormat, fmt.Errorf("log format: %s", logFormat))
}

func getSlogLevel(logLevel string) (slog.Level, error) {
	switch strings.ToUpper(logLevel) {
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, errors.Join(ErrLoggerInvalidLogLevel, fmt.Errorf("log level: %s", logLevel))
}

// ShortAddress renders 0x1234…abcd for log lines.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}

	return addr[:6] + "…" + addr[len(addr)-4:]
}
