package main

import (
	"os"

	"movefunnel/cmd/movefunnel/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
