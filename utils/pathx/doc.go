// File: doc.go
// Title: Package Documentation for pathx
// Description: Package-level documentation for the path utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial documentation

// Package pathx provides lexical path analysis and normalization for the
// mGW foundation library.
//
// Unlike path/filepath, every function in this package is platform
// independent: forward and backward slashes are both treated as
// separators, and no function ever touches the filesystem. This makes the
// package suitable for asset references, project files and network paths
// that originate on a different operating system than the one mGW is
// running on.
//
// Component extraction (GetDirectoryName, GetFileName,
// GetFileNameWithoutExtension, GetPathWithoutExtension) slices the input
// string without allocation. Normalization (Normalize,
// RemoveRelativeParts) folds "." and ".." segments with a segment stack
// and deliberately keeps ".." segments that climb past the root, so a
// caller validating user input can still reject the escape:
//
//	pathx.Normalize("/a/../../b") // "/../b"
//
// RemoveLongPathPrefix strips the Windows "\\?\" and "\\?\UNC\" markers
// so long paths compare equal to their conventional form.
package pathx
