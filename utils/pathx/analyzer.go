// File: analyzer.go
// Title: Path Component Extraction
// Description: Implements extraction of directory, file name and extension
//              components from path strings. All functions operate on both
//              forward and backward slashes and never touch the filesystem,
//              so they work on paths from foreign platforms as well.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package pathx

// lastSeparator returns the index of the last '/' or '\\' in path,
// or -1 if the path contains no separator.
func lastSeparator(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return i
		}
	}
	return -1
}

// GetDirectoryName returns the directory portion of path, i.e. everything
// before the last separator. A path without any separator has no directory
// and yields the empty string.
//
//	GetDirectoryName("C:\\Folder\\File.txt") == "C:\\Folder"
//	GetDirectoryName("File.txt") == ""
func GetDirectoryName(path string) string {
	idx := lastSeparator(path)
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// GetFileName returns the file name portion of path, i.e. everything after
// the last '/', '\\' or ':'. The drive colon counts as a separator so that
// "C:File.txt" yields "File.txt". A path ending in a separator yields the
// empty string.
func GetFileName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		c := path[i]
		if c == '/' || c == '\\' || c == ':' {
			return path[i+1:]
		}
	}
	return path
}

// GetFileNameWithoutExtension returns the file name portion of path with a
// trailing extension removed. Only the last extension is stripped, so
// "archive.tar.gz" yields "archive.tar". A file name without a dot is
// returned unchanged.
func GetFileNameWithoutExtension(path string) string {
	name := GetFileName(path)
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return name
}

// GetPathWithoutExtension returns path truncated at its last dot. The
// search covers the whole path, so a dot in a directory name counts when
// the file name has none. A path without any dot is returned unchanged.
func GetPathWithoutExtension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// GetExtension returns the extension of path including the leading dot,
// or the empty string if the file name has no extension.
func GetExtension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		c := path[i]
		if c == '.' {
			return path[i:]
		}
		if c == '/' || c == '\\' {
			break
		}
	}
	return ""
}

// HasExtension reports whether the file name portion of path carries an
// extension.
func HasExtension(path string) bool {
	return GetExtension(path) != ""
}
