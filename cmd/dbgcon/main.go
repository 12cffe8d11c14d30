package main

import (
	"os"

	"github.com/msto63/dbgcon/cmd/dbgcon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
