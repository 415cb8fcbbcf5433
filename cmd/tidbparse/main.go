// Package main provides the tidbparse command.
package main

import (
	"os"

	"github.com/siddontang/tidbparser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
