// File: example_test.go
// Title: Usage Examples for pathx
// Description: Runnable examples demonstrating path component extraction
//              and normalization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial examples

package pathx_test

import (
	"fmt"

	"github.com/msto63/mGW/foundation/utils/pathx"
)

func ExampleGetFileName() {
	fmt.Println(pathx.GetFileName(`C:\Projekte\Entwurf\Logo.svg`))
	fmt.Println(pathx.GetFileName("assets/textures/wood.png"))
	// Output:
	// Logo.svg
	// wood.png
}

func ExampleGetDirectoryName() {
	fmt.Println(pathx.GetDirectoryName("assets/textures/wood.png"))
	// Output: assets/textures
}

func ExampleGetFileNameWithoutExtension() {
	fmt.Println(pathx.GetFileNameWithoutExtension("assets/archive.tar.gz"))
	// Output: archive.tar
}

func ExampleNormalize() {
	fmt.Println(pathx.Normalize(`assets\.\textures\..\fonts\Sans.ttf`))
	fmt.Println(pathx.Normalize("/a/../../b"))
	// Output:
	// assets/fonts/Sans.ttf
	// /../b
}

func ExampleRemoveLongPathPrefix() {
	fmt.Println(pathx.RemoveLongPathPrefix(`\\?\C:\Projekte\Logo.svg`))
	// Output: C:\Projekte\Logo.svg
}
