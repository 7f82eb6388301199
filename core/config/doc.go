// File: doc.go
// Title: Package Documentation for config
// Description: Package-level documentation for configuration management.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial documentation

// Package config provides configuration management for mGW tools.
//
// Configuration files may be written in TOML (the default) or YAML; the
// format is detected from the file extension or forced through
// LoadOptions. Keys are accessed with dot notation:
//
//	cfg, err := config.Load("mgw.toml")
//	if err != nil { ... }
//	level := cfg.GetString("log.level", "info")
//
// When an environment prefix is configured, every key can be overridden
// from the environment: with prefix "MGW" the key "log.level" is
// overridden by MGW_LOG_LEVEL. Environment values win over file values.
//
// Validate checks loaded values against ValidationRules and applies
// defaults for absent optional fields; StandardRules covers the settings
// shared by every mGW tool.
package config
