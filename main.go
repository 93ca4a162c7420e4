package main

import (
	"os"

	"github.com/kindling-dev/kindling/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
