// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and
//              accessing configuration data from TOML and YAML files with
//              environment variable overrides. Access is thread-safe and
//              keys use dot notation for nested tables.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mgwerror "github.com/msto63/mGW/foundation/core/error"
	mgwstringx "github.com/msto63/mGW/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mgwstringx.IsBlank(filePath) {
		return nil, mgwerror.New("config file path cannot be empty").
			WithCode(mgwerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, mgwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mgwerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mgwerror.Wrap(err, "failed to read config file").
			WithCode(mgwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mgwerror.Wrap(err, "failed to parse config file").
			WithCode(mgwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mgwerror.Wrap(err, "failed to parse config from string").
			WithCode(mgwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mgwerror.Wrap(err, "TOML parse error").
				WithCode(mgwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mgwerror.Wrap(err, "YAML parse error").
				WithCode(mgwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mgwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mgwerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}

	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return 0
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}

	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// getValue retrieves a configuration value by key (supports dot notation)
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			return nil
		}
	}

	return nil
}

// getEnvValue retrieves the environment variable override for a key
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format.
// "log.level" with prefix "MGW" becomes "MGW_LOG_LEVEL".
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			next = make(map[string]interface{})
			current[k] = next
			current = next
		}
	}
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
