package logger

import (
	"go.uber.org/zap"
)

// NewLogger - build zap logger by env ("production" | anything else = development)
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.DisableStacktrace = true
		return cfg.Build()
	}

	return zap.NewDevelopment()
}
