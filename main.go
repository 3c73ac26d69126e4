package main

import (
	"os"

	"github.com/dafoma/lingualearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
