// Package logger configures the process-wide zap logger used by the CLI and
// server. Library packages stay log-free; this exists so every executable
// surface logs the same way.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFormat selects the output encoding.
type LogFormat string

const (
	// FormatConsole is a human-readable single-line encoding.
	FormatConsole LogFormat = "console"
	// FormatJSON is one JSON object per line.
	FormatJSON LogFormat = "json"
)

var initOnce sync.Once

// New creates a zap logger with the given level ("debug", "info", "warn",
// "error"; anything else falls back to info) and format.
func New(logLevel string, logFormat LogFormat) *zap.Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(logLevel); err == nil {
		level = parsed
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if logFormat == FormatConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller())
}

// Initialize installs a logger built from level/format as the zap global.
// Safe to call more than once; only the first call wins.
func Initialize(logLevel string, logFormat LogFormat) {
	initOnce.Do(func() {
		zap.ReplaceGlobals(New(logLevel, logFormat))
	})
}

// For returns a named sugared logger for one component.
func For(component string) *zap.SugaredLogger {
	return zap.S().Named(component)
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() error {
	return zap.L().Sync()
}
