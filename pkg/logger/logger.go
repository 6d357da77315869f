// Package logger builds the process-wide slog logger on top of a zap core.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to stdout. The returned func flushes buffered entries.
func New(level, format string) (*slog.Logger, func() error, error) {
	return NewWithWriter(os.Stdout, level, format)
}

func NewWithWriter(w io.Writer, level, format string) (*slog.Logger, func() error, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, errors.New("invalid log level: " + level)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch format {
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json", "":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, nil, errors.New("invalid log format: " + format)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	zl := zap.New(core)
	return slog.New(zapslog.NewHandler(core)), zl.Sync, nil
}
