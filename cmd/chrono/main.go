package main

import (
	"os"

	"github.com/chronokit/chronokit/cmd/chrono/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
