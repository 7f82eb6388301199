// File: example_test.go
// Title: Usage Examples for utfx
// Description: Runnable examples demonstrating strict conversion and
//              defect reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial examples

package utfx_test

import (
	"fmt"

	"github.com/msto63/mGW/foundation/utils/utfx"
)

func ExampleUTF8ToUTF16() {
	units, err := utfx.UTF8ToUTF16([]byte("Hi \U0001F600"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, u := range units {
		fmt.Printf("%04X ", u)
	}
	fmt.Println()
	// Output: 0048 0069 0020 D83D DE00
}

func ExampleIsValidUTF8() {
	fmt.Println(utfx.IsValidUTF8([]byte("Grüße")))
	fmt.Println(utfx.IsValidUTF8([]byte{0xE2}))
	// Output:
	// true
	// false
}
