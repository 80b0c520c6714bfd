package api

import (
	"github.com/hypernetix/crtime/libs/config"
	"github.com/hypernetix/crtime/libs/logging"
)

// Logger configuration structure
type apiLoggerConfig struct {
	Config config.ConfigLogging
}

// Logger configuration instance with default values
var apiLoggerConfigInstance = &apiLoggerConfig{
	Config: config.ConfigLogging{
		ConsoleLevel: "info",
		FileLevel:    "debug",
		File:         "logs/api.log",
		MaxSizeMB:    1000,
		MaxBackups:   3,
		MaxAgeDays:   28,
	},
}

// GetDefault returns the default logger configuration
func (l *apiLoggerConfig) GetDefault() interface{} {
	return l.Config
}

// Load updates the logger configuration from the provided config dictionary
func (l *apiLoggerConfig) Load(name string, configDict map[string]interface{}) error {
	cfg := &l.Config
	if err := config.UpdateStructFromConfig(cfg, configDict); err != nil {
		return err
	}

	logger = logging.CreateLogger(cfg, LoggerConfigKey)

	logger.ConsoleLogger.Debug("API logger initialized")
	return nil
}

func init() {
	// Register logger configuration
	config.RegisterLogger(LoggerConfigKey, apiLoggerConfigInstance)
}
