package main

import (
	"os"

	"github.com/grovetools/meetlogs/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
