// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the case folding and search primitives to
//              measure performance and guard against regressions in the
//              zero-allocation scan.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial benchmark implementation

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkFindIgnoreCaseShort(b *testing.B) {
	haystack := "Engine/Content/Shaders/Forward.shader"
	needle := "FORWARD"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FindIgnoreCase(haystack, needle)
	}
}

func BenchmarkFindIgnoreCaseLate(b *testing.B) {
	haystack := strings.Repeat("x", 512) + "Target"
	needle := "target"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FindIgnoreCase(haystack, needle)
	}
}

func BenchmarkFindIgnoreCaseMiss(b *testing.B) {
	haystack := strings.Repeat("abcdefgh", 64)
	needle := "absent"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FindIgnoreCase(haystack, needle)
	}
}

func BenchmarkFindIgnoreCaseUTF16(b *testing.B) {
	haystack := asUTF16("Engine/Content/Shaders/Forward.shader")
	needle := asUTF16("FORWARD")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FindIgnoreCaseUTF16(haystack, needle)
	}
}

func BenchmarkEqualFoldASCII(b *testing.B) {
	left := "Engine/Content/Shaders/Forward.shader"
	right := "engine/content/shaders/forward.SHADER"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EqualFoldASCII(left, right)
	}
}

func BenchmarkToUpperASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ToUpperASCII(byte(i))
	}
}
