// Package config provides configuration loading.
//
// Values are resolved in this order, later steps winning: built-in defaults,
// a .env file beside the executable, PEEKSHELL_* environment variables, the
// TOML config file, and the environment again so env always beats the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/paths"
	"github.com/joho/godotenv"
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

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PEEKSHELL_"

	configFileName = "peekshell" + FileExtTOML
	dotEnvFileName = ".env"
)

var (
	config    map[string]string
	configMap map[string]string
	explicit  map[string]bool
	mu        sync.RWMutex

	baseDirFunc = paths.BaseDir
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)
	explicit = make(map[string]bool)

	setDefaults()
	loadDotEnv()
	loadFromEnv()
	loadFromFile()
	loadFromEnv()
	validate()
	computeDirs()
}

// reset clears loaded state. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	config = nil
	configMap = nil
	explicit = nil
}

// setDefaults populates config with default values.
func setDefaults() {
	baseDir := baseDirFunc()

	setDefault("base_dir", baseDir)
	setDefault("data_dir", filepath.Join(baseDir, paths.DataDirName))
	setDefault("profile_dir", filepath.Join(baseDir, paths.ProfileDirName))
	setDefault("history_backend", "json")
	setDefault("api_addr", "127.0.0.1:7457")
	setDefault("api_token", "")
	setDefault("watch_debounce", "500ms")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("quiet", "false")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// loadDotEnv loads <base_dir>/.env into the process environment without
// overriding variables that are already set.
func loadDotEnv() {
	envPath := filepath.Join(config["base_dir"], dotEnvFileName)
	if _, err := os.Stat(envPath); err != nil {
		return
	}
	if err := godotenv.Load(envPath); err != nil {
		colors.Warning(fmt.Sprintf("unable to load %s: %v", envPath, err))
	}
}

// ConfigPath returns the config file location: PEEKSHELL_CONFIG_PATH or <base_dir>/peekshell.toml.
func ConfigPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	mu.RLock()
	base := config["base_dir"]
	mu.RUnlock()
	if base == "" {
		base = baseDirFunc()
	}
	return filepath.Join(base, configFileName)
}

// loadFromFile reads configuration from a file.
func loadFromFile() {
	configPath := os.Getenv(EnvPrefix + "CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(config["base_dir"], configFileName)
		if _, err := os.Stat(configPath); err != nil {
			return
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}

	var raw map[string]interface{}
	switch strings.ToLower(filepath.Ext(configPath)) {
	case FileExtTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		colors.Warning(fmt.Sprintf("unsupported config file format: %s", configPath))
		return
	}
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
		explicit[key] = true
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
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
		explicit[key] = true
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
		} else {
			config[key] = normalizedValue
		}
	}
}

// computeDirs re-derives data_dir and profile_dir from base_dir unless they were set explicitly.
func computeDirs() {
	baseDir := config["base_dir"]
	if baseDir == "" {
		return
	}
	if !explicit["data_dir"] {
		config["data_dir"] = filepath.Join(baseDir, paths.DataDirName)
	}
	if !explicit["profile_dir"] {
		config["profile_dir"] = filepath.Join(baseDir, paths.ProfileDirName)
	}
}

// Set overrides a single value after Load, e.g. from a command-line flag.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
		configMap = make(map[string]string)
		explicit = make(map[string]bool)
	}
	config[key] = value
	explicit[key] = true
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
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// All returns a sorted snapshot of key/value pairs.
func All() [][2]string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, config[k]})
	}
	return out
}

// WriteSample writes the default configuration as a commented TOML file at path.
// An existing file is left untouched and reported as an error.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	mu.RLock()
	typed := make(map[string]interface{}, len(configMap))
	for k, v := range configMap {
		if k == "base_dir" {
			continue
		}
		typed[k] = valueToInterface(v)
	}
	mu.RUnlock()

	data, err := toml.Marshal(typed)
	if err != nil {
		return fmt.Errorf("marshal sample config: %w", err)
	}
	header := "# peekshell configuration\n# This file is in TOML format.\n# Environment variables (PEEKSHELL_<KEY>) override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}
