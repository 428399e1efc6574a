// Package config provides configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	envPrefix = "SEGBAR_"
)

// Table keys hold nested TOML tables instead of scalar values.
const (
	tableBarTypes  = "bar_types"
	tableWikiPages = "wiki_pages"
)

var (
	config    map[string]string
	configMap map[string]string
	barTypes  map[string]BarType
	wikiPages map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	// Reset to defaults
	config = make(map[string]string)
	configMap = make(map[string]string)
	barTypes = defaultBarTypes()
	wikiPages = defaultWikiPages()

	setDefaults()
	// Apply environment variable overrides so the config path can be redirected
	loadFromEnv()
	loadFromFile()
	// Re-apply environment variable overrides so env wins
	loadFromEnv()
	validate()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "segbar"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "segbar"))
	setDefault("skip_notice_duration", "4")
	setDefault("skip_keybind", "enter")
	setDefault("show_keybind_hint", "true")
	setDefault("notice_visibility_mode", NoticeVisible)
	setDefault("min_size_ratio", "0.003")
	setDefault("min_size_ratio_larger", "0.006")
	setDefault("auto_skip", "true")
	setDefault("dont_show_notice", "false")
	setDefault("audio_notification_on_skip", "false")
	setDefault("language", "en")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// loadFromFile reads configuration from a TOML file.
func loadFromFile() {
	configPath := config["config_path"]
	if configPath == "" {
		if configDir, ok := config["config_dir"]; ok {
			configPath = filepath.Join(configDir, "config"+FileExtTOML)
			if _, err := os.Stat(configPath); err != nil {
				configPath = ""
			}
		}
	}
	if configPath == "" {
		return
	}
	if strings.ToLower(filepath.Ext(configPath)) != FileExtTOML {
		colors.Warning(fmt.Sprintf("unsupported config file extension: %s", configPath))
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		switch key {
		case tableBarTypes:
			mergeBarTypes(v)
			continue
		case tableWikiPages:
			mergeWikiPages(v)
			continue
		}
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// mergeBarTypes applies [bar_types.<name>] tables over the defaults.
func mergeBarTypes(v interface{}) {
	table, ok := v.(map[string]interface{})
	if !ok {
		colors.Warning(fmt.Sprintf("%s must be a table, got %T", tableBarTypes, v))
		return
	}
	for name, entry := range table {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			colors.Warning(fmt.Sprintf("%s.%s must be a table, got %T", tableBarTypes, name, entry))
			continue
		}
		bt := barTypes[name]
		if color, ok := coerceConfigValue(fields["color"]); ok {
			bt.Color = color
		}
		if opacity, ok := coerceConfigValue(fields["opacity"]); ok {
			bt.Opacity = opacity
		}
		barTypes[name] = bt
	}
}

// mergeWikiPages applies the [wiki_pages] table over the defaults.
func mergeWikiPages(v interface{}) {
	table, ok := v.(map[string]interface{})
	if !ok {
		colors.Warning(fmt.Sprintf("%s must be a table, got %T", tableWikiPages, v))
		return
	}
	for category, url := range table {
		if s, ok := url.(string); ok {
			wikiPages[category] = s
		}
	}
}

// coerceConfigValue converts a configuration value to its string representation.
// Supported types are string, int, int64, float64, and bool.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
			continue
		}
		config[key] = normalizedValue
	}
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	n, err := strconv.Atoi(config[key])
	if err != nil {
		return defaultValue
	}
	return n
}

// GetFloat returns a configuration value as float, or default.
func GetFloat(key string, defaultValue float64) float64 {
	mu.RLock()
	defer mu.RUnlock()
	f, err := strconv.ParseFloat(config[key], 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	switch normalizeBool(config[key]) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Set overrides a single value for the running process.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
	}
	config[strings.ToLower(key)] = value
}

// WriteSample writes a commented sample configuration file to path.
func WriteSample(path string) error {
	mu.RLock()
	typed := make(map[string]interface{}, len(configMap)+1)
	for k, v := range configMap {
		if k == "config_dir" || k == "state_dir" {
			continue
		}
		typed[k] = valueToInterface(v)
	}
	typed[tableBarTypes] = barTypes
	mu.RUnlock()

	data, err := toml.Marshal(typed)
	if err != nil {
		return fmt.Errorf("marshal sample config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	header := "# segbar configuration\n# This file is in TOML format.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// valueToInterface converts a configuration value to an appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}
