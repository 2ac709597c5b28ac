package main

import (
	"os"

	"github.com/msto63/textkit/cmd/textkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
