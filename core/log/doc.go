// Package log provides structured logging capabilities for the mGW platform.
//
// Package: log
// Title: mGW Structured Logging Framework
// Description: This package implements a structured logging system with multiple
//              output formats, log levels, contextual fields, and performance
//              timing. It serves as the diagnostic sink for the foundation's
//              text, path, and number primitives: conversion failures and path
//              normalization diagnostics are reported through this logger.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Six log levels from trace to fatal with string parsing
// - JSON, text, and colored console output formats
// - Persistent context fields and correlation IDs
// - Optional caller information for debugging
// - Performance timers with error-aware completion logging
// - Severity-aware logging of mGW structured errors via LogError
//
// Usage:
//   import "github.com/msto63/mGW/foundation/core/log"
//
//   logger := log.NewWithConfig(log.Config{
//     Level:  log.LevelDebug,
//     Format: log.FormatConsole,
//     Name:   "pathx",
//   })
//
//   logger.Info("path normalized", log.Fields{
//     "input":  "a/./b/../c",
//     "output": "a/c",
//   })
//
//   timer := logger.StartTimer("utf8_to_utf16")
//   // ... perform conversion ...
//   timer.Stop()
package log
