package main

import (
	"os"

	"github.com/sartorproj/goregress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
