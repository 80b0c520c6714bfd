package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var (
	instance *Config
	once     sync.Once
	mu       sync.RWMutex
)

// Get returns the current configuration instance
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// Config represents the global configuration
type Config struct {
	Server ConfigServer `mapstructure:"server"`
}

type ConfigServer struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	HomeDir    string `mapstructure:"home_dir"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

type ConfigLogging struct {
	ConsoleLevel string `mapstructure:"console_level" default:"info"`
	FileLevel    string `mapstructure:"file_level" default:"debug"`
	File         string `mapstructure:"file" default:"logs/main.log"`
	MaxSizeMB    int    `mapstructure:"max_size_mb" default:"1000"`
	MaxBackups   int    `mapstructure:"max_backups" default:"3"`
	MaxAgeDays   int    `mapstructure:"max_age_days" default:"7"`
}

// ToYaml returns the YAML representation of the full configuration,
// merging the base config with logging and additional registered components.
func (c *Config) ToYaml() (string, error) {
	baseMap, ok := structToMap(c).(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("failed extracting base config as map")
	}

	loggingSection := make(map[string]interface{})
	for name, comp := range registeredLoggers {
		loggingSection[name] = structToMap(comp.GetDefault())
	}
	baseMap["logging"] = loggingSection

	for key, comp := range registeredConfigComponents {
		baseMap[key] = structToMap(comp.GetDefault())
	}

	yamlData, err := yaml.Marshal(baseMap)
	if err != nil {
		return "", fmt.Errorf("error marshaling full config to YAML: %v", err)
	}

	return string(yamlData), nil
}

// structToMap recursively converts a value (struct, slice, or map) to a
// corresponding standard Go data structure. It uses the "mapstructure" tag
// for struct fields so that nested pointers are handled correctly.
func structToMap(i interface{}) interface{} {
	val := reflect.ValueOf(i)
	if !val.IsValid() {
		return i
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return nil
		}
		return structToMap(val.Elem().Interface())
	case reflect.Struct:
		out := make(map[string]interface{})
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if field.PkgPath != "" {
				continue
			}
			tagFull := field.Tag.Get("mapstructure")
			if tagFull == "" {
				continue
			}
			if strings.Contains(tagFull, "squash") {
				fieldValue := val.Field(i).Interface()
				flattened := structToMap(fieldValue)
				if m, ok := flattened.(map[string]interface{}); ok {
					for k, v := range m {
						out[k] = v
					}
				}
				continue
			}
			parts := strings.Split(tagFull, ",")
			tag := parts[0]
			fieldValue := val.Field(i).Interface()
			out[tag] = structToMap(fieldValue)
		}
		return out
	case reflect.Slice:
		outSlice := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			outSlice[i] = structToMap(val.Index(i).Interface())
		}
		return outSlice
	case reflect.Map:
		outMap := make(map[interface{}]interface{})
		for _, key := range val.MapKeys() {
			outMap[key.Interface()] = structToMap(val.MapIndex(key).Interface())
		}
		return outMap
	default:
		return i
	}
}

// GetCrtimeHomeDir returns the resolved .crtime directory path
func GetCrtimeHomeDir() (string, error) {
	return ResolveHomeDir("~/.crtime")
}

// ResolveHomeDir resolves the home directory path based on OS and expands aliases
func ResolveHomeDir(homeDir string) (string, error) {
	if homeDir == "" {
		return "", fmt.Errorf("home dir path is not set")
	}

	switch runtime.GOOS {
	case "windows":
		homeDir = os.ExpandEnv(homeDir)
	default:
		homeDir = expandHomeDir(homeDir)
	}

	return filepath.Clean(homeDir), nil
}

// expandHomeDir expands ~/ to the user's home directory
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // fallback to original path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func getDefaultHomeDir() string {
	homeDir, err := GetCrtimeHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			home := os.Getenv("USERPROFILE")
			if home == "" {
				home = os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
			}
			return filepath.Join(home, ".crtime")
		}
		return os.ExpandEnv("~/.crtime")
	}
	return homeDir
}

// ConfigComponent is an interface that configuration components must implement
type ConfigComponent interface {
	// Load loads and validates the configuration
	Load(name string, config map[string]interface{}) error

	// GetDefault returns the default configuration
	GetDefault() interface{}
}

var registeredLoggers = make(map[string]ConfigComponent)

// RegisterLogger registers a component that implements ConfigLogging
func RegisterLogger(name string, component ConfigComponent) {
	if _, ok := registeredLoggers[name]; ok {
		panic(fmt.Sprintf("Logger %s already registered", name))
	}
	registeredLoggers[name] = component
}

var registeredConfigComponents = make(map[string]ConfigComponent)

// RegisterConfigComponent registers a component that implements ConfigComponent
func RegisterConfigComponent(name string, component ConfigComponent) {
	if _, ok := registeredConfigComponents[name]; ok {
		panic(fmt.Sprintf("Config component %s already registered", name))
	}
	registeredConfigComponents[name] = component
}

// Load loads the configuration from files and environment variables
func Load(configPaths ...string) (*Config, error) {
	if instance != nil {
		return instance, nil
	}

	var err error
	once.Do(func() {
		instance, err = load(configPaths...)
	})

	return instance, err
}

// load is the internal function that actually loads the config
func load(configPaths ...string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for _, path := range configPaths {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("CRTIME")
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Execute all registered logger initializers
	for name, component := range registeredLoggers {
		var componentConfig map[string]interface{}
		if subConfig := v.Sub(fmt.Sprintf("logging.%s", name)); subConfig != nil {
			componentConfig = subConfig.AllSettings()
		} else {
			componentConfig = make(map[string]interface{})
		}

		if err := component.Load(name, componentConfig); err != nil {
			return nil, fmt.Errorf("failed to load config for component %s: %w", name, err)
		}
	}

	// Execute all registered config components
	for name, component := range registeredConfigComponents {
		var componentConfig map[string]interface{}
		if subConfig := v.Sub(name); subConfig != nil {
			componentConfig = subConfig.AllSettings()
		} else {
			continue
		}

		if err := component.Load(name, componentConfig); err != nil {
			return nil, fmt.Errorf("failed to load config for component %s: %w", name, err)
		}
	}

	return &config, nil
}

// Reset clears the current configuration instance (mainly for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8087)
	v.SetDefault("server.home_dir", getDefaultHomeDir())
	v.SetDefault("server.timeout_sec", 30)

	for name, component := range registeredLoggers {
		v.SetDefault(fmt.Sprintf("logging.%s", name), component.GetDefault())
	}

	for name, component := range registeredConfigComponents {
		v.SetDefault(name, component.GetDefault())
	}
}

// GetDefault returns the default configuration
func GetDefault() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		// If we can't unmarshal the defaults, we should panic since this is a critical error
		panic(fmt.Errorf("failed to unmarshal default config: %w", err))
	}

	mu.Lock()
	instance = &config
	mu.Unlock()

	for name, component := range registeredLoggers {
		var componentConfig map[string]interface{}
		if subConfig := v.Sub(fmt.Sprintf("logging.%s", name)); subConfig != nil {
			componentConfig = subConfig.AllSettings()
		} else {
			componentConfig = make(map[string]interface{})
		}

		if err := component.Load(name, componentConfig); err != nil {
			panic(fmt.Errorf("failed to load config for component %s: %w", name, err))
		}
	}

	for name, component := range registeredConfigComponents {
		var componentConfig map[string]interface{}
		if subConfig := v.Sub(name); subConfig != nil {
			componentConfig = subConfig.AllSettings()
		} else {
			componentConfig = make(map[string]interface{})
		}

		if err := component.Load(name, componentConfig); err != nil {
			panic(fmt.Errorf("failed to load config for component %s: %w", name, err))
		}
	}

	return &config
}

func GetServerTimeout() time.Duration {
	cfg := Get()

	if cfg != nil && cfg.Server.TimeoutSec > 0 {
		return time.Duration(cfg.Server.TimeoutSec) * time.Second
	}

	return 30 * time.Second
}

// UpdateStructFromConfig updates the *toStruct* fields from a config map
// represented as *fromConfig*. The field name is taken from the mapstructure
// tag if available, otherwise from the struct field name.
//
// UpdateStructFromConfig ensures that the *fromConfig* doesn't have a field
// that is not present in *toStruct*, and also validates the field types match.
func UpdateStructFromConfig(toStruct any, fromConfig map[string]interface{}) error {
	if fromConfig == nil {
		return fmt.Errorf("source config cannot be nil")
	}

	toVal := reflect.ValueOf(toStruct)
	if toVal.Kind() != reflect.Ptr || toVal.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer")
	}

	toElemType := toVal.Type().Elem()
	if toElemType.Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a pointer to a struct, got pointer to %v", toElemType.Kind())
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           toStruct,
		ZeroFields:       false,
	})
	if err != nil {
		return fmt.Errorf("error creating mapstructure decoder for copy: %v", err)
	}

	return decoder.Decode(fromConfig)
}
