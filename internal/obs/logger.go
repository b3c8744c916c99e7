// Package obs provides the library's optional structured logger. Among the
// core packages only ruleset.Build accepts a *zap.Logger, and it treats nil
// as "construct a no-op logger and carry on" (grounded on the teacher's own
// nil-tolerant logger plumbing in internal/common/config); the resolver and
// cache packages do not log. The parser facade passes its optional logger
// through NopIfNil, and cmd/uabench builds a real one with New.
package obs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how loudly the library logs. The zero value is
// valid: it produces an INFO-level logger writing JSON to stdout.
type Config struct {
	Level string // "debug", "info", "warn", "error"; default "info"

	FilePath   string // if set, also write to this file with rotation
	MaxSizeMB  int    // default 100
	MaxBackups int    // default 3
	MaxAgeDays int    // default 28
	Compress   bool
}

// New builds a zap logger from cfg. A zero Config is valid.
func New(cfg Config) (*zap.Logger, error) {
	level := parseLevel(cfg.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if cfg.FilePath != "" {
		writer, err := fileWriter(cfg)
		if err != nil {
			return nil, fmt.Errorf("obs: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, writer, level))
	}

	var core zapcore.Core
	if len(cores) == 1 {
		core = cores[0]
	} else {
		core = zapcore.NewTee(cores...)
	}

	return zap.New(core), nil
}

// NopIfNil returns log unchanged unless it's nil, in which case it returns
// a no-op logger. The parser facade calls this at construction so callers
// never have to pass a real logger to get correct behaviour.
func NopIfNil(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fileWriter(cfg Config) (zapcore.WriteSyncer, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("file path must be set for file logging")
	}
	maxSize := cfg.MaxSizeMB
	if maxSize == 0 {
		maxSize = 100
	}
	maxBackups := cfg.MaxBackups
	if maxBackups == 0 {
		maxBackups = 3
	}
	maxAge := cfg.MaxAgeDays
	if maxAge == 0 {
		maxAge = 28
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   cfg.Compress,
	}), nil
}
