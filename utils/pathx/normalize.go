// File: normalize.go
// Title: Path Normalization
// Description: Implements separator unification, relative-segment folding
//              and long-path prefix removal. Normalization is purely
//              lexical: the filesystem is never consulted, and segments
//              that climb past the root are preserved instead of silently
//              dropped so the caller can still detect the escape.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation
// - 2025-08-16 v0.1.1: Preserve leading ".." segments past the root

package pathx

import (
	"strings"

	"github.com/msto63/mGW/foundation/utils/stringx"
)

// NormalizeSeparators replaces every backslash in path with a forward
// slash. No other transformation is applied.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// RemoveRelativeParts folds "." and ".." segments out of path using a
// segment stack. Separators are unified to forward slashes first. Empty
// segments and "." segments are dropped. A ".." segment pops the previous
// segment unless the stack is empty or its top is itself a "..", in which
// case the ".." is kept, so a path that climbs past its root keeps the
// climb visible:
//
//	RemoveRelativeParts("/a/../../b") == "/../b"
//
// A rooted path stays rooted and a relative path stays relative.
func RemoveRelativeParts(path string) string {
	if stringx.IsEmpty(path) {
		return path
	}

	unified := NormalizeSeparators(path)
	rooted := unified[0] == '/'

	stack := make([]string, 0, 8)
	for _, segment := range strings.Split(unified, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
			} else {
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, segment)
		}
	}

	result := strings.Join(stack, "/")
	if rooted {
		result = "/" + result
	}
	return result
}

// Normalize unifies separators and folds relative segments in one step.
// It is the canonical form used when comparing paths for equality.
func Normalize(path string) string {
	return RemoveRelativeParts(path)
}

// Windows long-path prefixes. The UNC form must be checked first because
// it contains the plain form as a prefix.
const (
	longPathPrefix    = `\\?\`
	longPathUNCPrefix = `\\?\UNC\`
)

// RemoveLongPathPrefix strips the Windows long-path prefix from path.
// "\\?\UNC\server\share" becomes "\\server\share" and "\\?\C:\dir"
// becomes "C:\dir". The UNC marker is matched case-insensitively. A path
// without a long-path prefix is returned unchanged.
func RemoveLongPathPrefix(path string) string {
	if len(path) >= len(longPathUNCPrefix) &&
		path[:len(longPathPrefix)] == longPathPrefix &&
		stringx.EqualFoldASCII(path[len(longPathPrefix):len(longPathUNCPrefix)], "UNC\\") {
		return `\\` + path[len(longPathUNCPrefix):]
	}
	if strings.HasPrefix(path, longPathPrefix) {
		return path[len(longPathPrefix):]
	}
	return path
}

// IsRooted reports whether path starts at a root: a separator, or a drive
// letter followed by a colon.
func IsRooted(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' || path[0] == '\\' {
		return true
	}
	if len(path) >= 2 && path[1] == ':' {
		c := stringx.ToUpperASCII(path[0])
		return c >= 'A' && c <= 'Z'
	}
	return false
}
