package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pressgraph-hq/pressgraph-mcp/internal/config"
)

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// Init initializes a zap SugaredLogger using settings from config. Output
// goes to stderr: the MCP stdio transport owns stdout.
func Init(cfg *config.Config) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	sugar := logger.Sugar()
	S = sugar
	return sugar, nil
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// ToolLogger adapts a SugaredLogger to the two-channel surface the tool
// result formatter expects.
type ToolLogger struct {
	s *zap.SugaredLogger
}

// NewToolLogger wraps the given logger; a nil argument falls back to the
// package-level logger.
func NewToolLogger(s *zap.SugaredLogger) *ToolLogger {
	if s == nil {
		s = S
	}
	return &ToolLogger{s: s}
}

func (l *ToolLogger) Log(msg string) {
	if l.s == nil {
		return
	}
	l.s.Info(msg)
}

func (l *ToolLogger) Error(v any) {
	if l.s == nil {
		return
	}
	l.s.Desugar().Error("api call failed", zap.Any("error", v))
}
