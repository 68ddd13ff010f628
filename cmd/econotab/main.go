// Package main is the entry point for the econotab CLI.
package main

import (
	"os"

	"github.com/jmylchreest/econotab/cmd/econotab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
