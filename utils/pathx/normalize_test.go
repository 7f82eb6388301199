// File: normalize_test.go
// Title: Tests for Path Normalization
// Description: Table-driven tests for separator unification, relative
//              segment folding including past-root climbs, and long-path
//              prefix removal.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-15 v0.1.0: Initial test implementation
// - 2025-08-16 v0.1.1: Added past-root climb cases

package pathx

import "testing"

func TestNormalizeSeparators(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"backslashes", `C:\Folder\File.txt`, "C:/Folder/File.txt"},
		{"forward slashes unchanged", "/usr/local/bin", "/usr/local/bin"},
		{"mixed", `Content\Sub/File.txt`, "Content/Sub/File.txt"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSeparators(tt.path); got != tt.want {
				t.Errorf("NormalizeSeparators(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRemoveRelativeParts(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"no relative parts", "/usr/local/bin", "/usr/local/bin"},
		{"single dot", "/usr/./bin", "/usr/bin"},
		{"double dot", "/usr/local/../bin", "/usr/bin"},
		{"leading dot relative", "./Content/File.txt", "Content/File.txt"},
		{"collapse to root", "/a/..", "/"},
		{"past root", "/a/../../b", "/../b"},
		{"relative past root", "a/../../b", "../b"},
		{"chained climbs", "../../a", "../../a"},
		{"empty segments", "/usr//local///bin", "/usr/local/bin"},
		{"windows separators", `C:\Folder\..\Other\File.txt`, "C:/Other/File.txt"},
		{"dot only", ".", ""},
		{"empty", "", ""},
		{"trailing double dot", "Content/Sub/..", "Content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveRelativeParts(tt.path); got != tt.want {
				t.Errorf("RemoveRelativeParts(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(`C:\Folder\.\Sub\..\File.txt`); got != "C:/Folder/File.txt" {
		t.Errorf("Normalize() = %q, want %q", got, "C:/Folder/File.txt")
	}
}

func TestRemoveLongPathPrefix(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain prefix", `\\?\C:\Folder\File.txt`, `C:\Folder\File.txt`},
		{"unc prefix", `\\?\UNC\server\share\File.txt`, `\\server\share\File.txt`},
		{"unc prefix lowercase", `\\?\unc\server\share`, `\\server\share`},
		{"no prefix", `C:\Folder\File.txt`, `C:\Folder\File.txt`},
		{"unc without marker", `\\server\share`, `\\server\share`},
		{"empty", "", ""},
		{"prefix only", `\\?\`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveLongPathPrefix(tt.path); got != tt.want {
				t.Errorf("RemoveLongPathPrefix(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsRooted(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"unix root", "/usr", true},
		{"backslash root", `\Folder`, true},
		{"drive letter", `C:\Folder`, true},
		{"lowercase drive", `c:\Folder`, true},
		{"relative", "Content/File.txt", false},
		{"drive-like digit", `1:\x`, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRooted(tt.path); got != tt.want {
				t.Errorf("IsRooted(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
