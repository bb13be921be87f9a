package main

import (
	"os"

	"github.com/articod/articod/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
