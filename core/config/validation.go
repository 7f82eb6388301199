// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements validation for configuration values including
//              type checking, required fields, enumerated values and
//              pattern matching. Defaults are applied for absent optional
//              fields during validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"reflect"
	"regexp"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the field is required
	Type     string      // Expected type: "string", "int", "bool"
	OneOf    []string    // Allowed values for string fields
	Default  interface{} // Default value applied if not present
	Pattern  string      // Regex pattern for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate validates the configuration against the provided rules
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	for key, rule := range rules {
		if err := c.validateField(key, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	if rule.Required && value == nil {
		return fmt.Errorf("required field '%s' is missing", key)
	}

	if value == nil {
		if rule.Default != nil {
			c.Set(key, rule.Default)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		if err := validateOneOf(key, value, rule.OneOf); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

// validateType validates the type of a configuration value
func validateType(key string, value interface{}, expectedType string) error {
	kind := reflect.TypeOf(value).Kind()

	switch expectedType {
	case "string":
		if kind != reflect.String {
			return fmt.Errorf("field '%s' must be a string, got %s", key, kind)
		}
	case "int":
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			// valid
		case reflect.Float64:
			// YAML numbers may arrive as float64
			if f, ok := value.(float64); !ok || f != float64(int64(f)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %s", key, kind)
		}
	case "bool":
		if kind != reflect.Bool {
			return fmt.Errorf("field '%s' must be a boolean, got %s", key, kind)
		}
	default:
		return fmt.Errorf("field '%s' has unknown expected type '%s'", key, expectedType)
	}

	return nil
}

// validateOneOf validates that a string value is among the allowed values
func validateOneOf(key string, value interface{}, allowed []string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string to match allowed values", key)
	}
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return fmt.Errorf("field '%s' has value '%s', allowed: %v", key, s, allowed)
}

// validatePattern validates a string value against a regex pattern
func validatePattern(key string, value interface{}, pattern string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string to match a pattern", key)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("field '%s' has invalid pattern '%s': %v", key, pattern, err)
	}
	if !re.MatchString(s) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, pattern)
	}
	return nil
}

// StandardRules returns the validation rules for the foundation settings
// shared by all mGW tools: the log level and format plus the path
// normalization policy.
func StandardRules() ValidationRules {
	return ValidationRules{
		"log.level": {
			Type:    "string",
			OneOf:   []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Default: "info",
		},
		"log.format": {
			Type:    "string",
			OneOf:   []string{"json", "text", "console"},
			Default: "console",
		},
		"path.keep_root_escapes": {
			Type:    "bool",
			Default: true,
		},
	}
}
