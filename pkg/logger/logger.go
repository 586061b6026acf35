package logger

import "go.uber.org/zap"

// LoggerConfig configures the application logger.
type LoggerConfig struct {
	Debug bool
}

// NewLogger creates a zap logger. Debug switches to the development
// configuration with debug-level output enabled.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	var zapCfg zap.Config
	if cfg.Debug {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	return zapCfg.Build()
}
