// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12

package stringx

import "testing"

func BenchmarkIsBlank(b *testing.B) {
	testStrings := []string{"", "   ", "hello world with some text"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsBlank(testStrings[i%len(testStrings)])
	}
}

func BenchmarkRemoveChars(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = RemoveChars("4111 1111-1111 1111", " -")
	}
}

func BenchmarkStripExtension(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = StripExtension("+1 (555) 010-0100 ext. 1234", "ext.", "ext", "x")
	}
}

func BenchmarkCamelCaseName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CamelCaseName("XMLHttpRequest")
	}
}
