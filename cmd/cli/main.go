// Package main is the entry point for the neoncost CLI.
package main

import (
	"os"

	"neoncost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
