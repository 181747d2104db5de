package main

import (
	"os"

	"boxpick/cmd/boxpick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
