package main

import (
	"os"

	"github.com/wakatools/wakaview/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
