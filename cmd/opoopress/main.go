package main

import (
	"os"

	"github.com/opoopress/opoopress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
