package main

import (
	"os"

	"github.com/BeatGlow/monobuf/cmd/monobuf/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
