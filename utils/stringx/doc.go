// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the mGW platform,
//              offering allocation-aware, ASCII-safe string primitives that extend
//              Go's standard library for identifier and path handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation with fold and search primitives

// Package stringx provides extended string operations for the mGW platform.
//
// Package: stringx
// Title: Extended String Operations for mGW Foundation
// Description: This package provides essential string utilities that extend
//              the Go standard library with the case-insensitive primitives
//              the platform uses for identifier and path matching.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Overview
//
// The stringx package provides case folding and case-insensitive search for
// both 8-bit byte strings and 16-bit UTF-16 code unit strings. Folding is
// restricted to the ASCII letters a-z: the primitives serve file names,
// identifiers, and paths, where locale-aware folding would be wrong, and
// non-ASCII text must always compare exactly.
//
// Key capabilities include:
//   - ASCII upper-casing for bytes and UTF-16 code units
//   - Case-insensitive substring search with a first-letter prefilter
//   - Equality under ASCII case folding for both string widths
//   - Null-safe emptiness and blankness checks
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Core Operations: Basic string utilities (stringx.go)
//   - Case Folding: ASCII fold primitives (fold.go)
//   - Search: Case-insensitive substring search (search.go)
//
// The search is a linear single-pass scan without backtracking structures.
// Inputs are short identifiers and paths, not bulk text, so the O(n*m)
// worst case is accepted in exchange for zero allocation and no
// preprocessing.
//
// Usage Examples
//
// Case-insensitive search:
//
//	idx := stringx.FindIgnoreCase("Hello World", "WORLD")  // 6
//	idx = stringx.FindIgnoreCase("Hello World", "absent")  // stringx.NotFound
//	ok := stringx.ContainsIgnoreCase("config.TOML", ".toml")  // true
//
// UTF-16 search over decoded wide strings:
//
//	units, _ := utfx.UTF8ToUTF16([]byte("Hello World"))
//	needle, _ := utfx.UTF8ToUTF16([]byte("WORLD"))
//	idx := stringx.FindIgnoreCaseUTF16(units, needle)  // 6
package stringx
