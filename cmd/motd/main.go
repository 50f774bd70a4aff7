// Package main is the entry point for the motd CLI.
package main

import (
	"os"

	"github.com/thoreinstein/motd/cmd/motd/commands"
)

func main() {
	os.Exit(commands.Main(os.Stderr))
}
