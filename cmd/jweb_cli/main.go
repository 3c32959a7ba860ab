// Package main is the entry point for the jweb CLI.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/Odongfelix/jweb/cmd/jweb_cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
