package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log      *zap.Logger
	initOnce sync.Once
)

// New builds a zap logger for the given environment: JSON on stdout in
// production, colored console output everywhere else.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg.Build(zap.AddCaller())
}

// Init replaces the global logger.
func Init(env string) {
	l, err := New(env)
	if err != nil {
		panic(err)
	}
	log = l
}

// L returns the global logger, initialising it from APP_ENV on first use.
func L() *zap.Logger {
	initOnce.Do(func() {
		if log == nil {
			Init(os.Getenv("APP_ENV"))
		}
	})
	return log
}

// Sync flushes logs.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
