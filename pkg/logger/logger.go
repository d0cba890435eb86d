package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log configures the process logger. An empty Sink logs to stdout only.
type Log struct {
	LogLevel   zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Sink       string        `yaml:"sink" envconfig:"LOG_SINK"`
	MaxSizeMB  int           `yaml:"maxSize" envconfig:"LOG_MAX_SIZE" default:"100"`
	MaxBackups int           `yaml:"maxBackups" envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays int           `yaml:"maxAge" envconfig:"LOG_MAX_AGE" default:"28"`
	Compress   bool          `yaml:"compress" envconfig:"LOG_COMPRESS"`
}

func NewLogger(cfg Log, service string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.NewAtomicLevelAt(cfg.LogLevel)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(os.Stdout), level),
	}
	if cfg.Sink != "" {
		rotation := &lumberjack.Logger{
			Filename:   cfg.Sink,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(rotation), level))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Named(service)
}
