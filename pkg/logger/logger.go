package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process-wide zap logger. Level accepts the usual
// zap names (debug, info, warn, error); anything unparseable keeps the
// config default.
func NewLogger(level string, production bool) (*zap.Logger, error) {
	var config zap.Config

	if production {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(level)); err == nil {
		config.Level.SetLevel(parsed)
	}

	return config.Build()
}
