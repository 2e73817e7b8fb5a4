// Package logger provides the process-wide structured logger. The first
// Get call fixes the level for the process lifetime; later calls return
// the same instance regardless of the level they pass.
package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by Get, matched case-insensitively so
// LOG_LEVEL=INFO and LOG_LEVEL=info both work. Unknown names fall back
// to info.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

var (
	instance *Logger
	once     sync.Once
)

// Get returns the singleton logger, initializing it on first use.
func Get(level string) *Logger {
	once.Do(func() {
		instance = &Logger{SugaredLogger: zap.New(consoleCore(parseLevel(level))).Sugar()}
	})
	return instance
}

func parseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// consoleCore encodes to stdout with RFC3339 timestamps and capitalized
// level names.
func consoleCore(level zapcore.Level) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.Lock(os.Stdout)
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(sink), zap.NewAtomicLevelAt(level))
}
