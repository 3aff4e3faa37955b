package main

import (
	"os"

	"github.com/f77sub/f77sub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
