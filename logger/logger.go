package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Initialize builds the application logger for the given environment.
// Production gets JSON output with ISO8601 timestamps, everything else gets
// the colored development console encoder.
func Initialize(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}
