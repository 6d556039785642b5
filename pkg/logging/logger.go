package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared zap logger writing to stdout. Level is any name zap
// understands ("debug", "info", ...); encoding is "json" or "console".
func New(level string, encoding string) (*zap.SugaredLogger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		return nil, err
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "time",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
