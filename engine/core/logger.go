package core

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the engine logger. Development mode logs in console
// format with caller info; otherwise JSON.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		var err error
		if level, err = zap.ParseAtomicLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
