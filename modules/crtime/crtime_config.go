package crtime

import (
	"github.com/hypernetix/crtime/libs/config"
	"github.com/hypernetix/crtime/libs/logging"
)

// Crtime module configuration structure
type crtimeConfig struct {
	DefaultFormat string `mapstructure:"default_format"`
}

// Logger configuration structure
type crtimeLoggerConfig struct {
	Config config.ConfigLogging
}

var crtimeConfigInstance = &crtimeConfig{
	DefaultFormat: FormatLocale,
}

var crtimeLoggerConfigInstance = &crtimeLoggerConfig{
	Config: config.ConfigLogging{
		ConsoleLevel: "info",
		FileLevel:    "debug",
		File:         "logs/crtime.log",
		MaxSizeMB:    100,
		MaxBackups:   3,
		MaxAgeDays:   28,
	},
}

// defaultFormat is the display format used when the caller states no
// preference
func defaultFormat() string {
	if crtimeConfigInstance.DefaultFormat != "" {
		return crtimeConfigInstance.DefaultFormat
	}
	return FormatLocale
}

func (c *crtimeConfig) GetDefault() interface{} {
	return c
}

func (c *crtimeConfig) Load(name string, configDict map[string]interface{}) error {
	return config.UpdateStructFromConfig(c, configDict)
}

func (l *crtimeLoggerConfig) GetDefault() interface{} {
	return l.Config
}

func (l *crtimeLoggerConfig) Load(name string, configDict map[string]interface{}) error {
	cfg := &l.Config
	if err := config.UpdateStructFromConfig(cfg, configDict); err != nil {
		return err
	}

	logger = logging.CreateLogger(cfg, "crtime")

	logger.ConsoleLogger.Debug("Crtime logger initialized")
	return nil
}

func init() {
	config.RegisterConfigComponent("crtime", crtimeConfigInstance)
	config.RegisterLogger("crtime", crtimeLoggerConfigInstance)
}
