// File: example_test.go
// Title: Example Tests for mathx
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12

package mathx_test

import (
	"fmt"

	"github.com/msto63/textkit/utils/mathx"
)

func ExampleParseDecimal() {
	d, err := mathx.ParseDecimal("1,234.50")
	fmt.Println(d, err)

	_, err = mathx.ParseDecimal("1e3")
	fmt.Println(err != nil)
	// Output:
	// 1234.5 <nil>
	// true
}
