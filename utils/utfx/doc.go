// File: doc.go
// Title: Package Documentation for utfx
// Description: Package-level documentation for the strict Unicode
//              transformation utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial documentation

// Package utfx converts between UTF-8 and UTF-16 with strict validation.
//
// The standard library substitutes U+FFFD for malformed input, which is
// the right behavior for display but the wrong behavior for data
// pipelines: a silently repaired asset name or project path no longer
// matches its original. Every conversion in this package fails instead,
// with an error that carries the kind of defect and the offset where it
// was found, so the caller can reject or log the corrupted input.
//
// Rejected on decode: orphan continuation bytes, invalid leading bytes,
// truncated multi-byte sequences, malformed continuation bytes, encoded
// surrogate code points and values beyond U+10FFFF. Rejected on encode:
// unpaired and reversed surrogates.
//
// UTF8ToUTF16Into writes into a caller-supplied buffer for callers that
// convert in a loop and want to avoid per-call allocation; UTF16Length
// and UTF8Length size such buffers exactly.
package utfx
