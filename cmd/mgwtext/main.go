package main

import (
	"os"

	"github.com/msto63/mGW/foundation/cmd/mgwtext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
