package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
)

const serviceName = "photo-sanitizer"

// NewLogger builds the process logger. Format "console" gives colored
// development output; anything else is JSON.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config

	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "time"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.InitialFields = map[string]any{"service": serviceName}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger, nil
}
