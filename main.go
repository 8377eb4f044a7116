package main

import (
	"os"

	"github.com/certlab/examgrade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
