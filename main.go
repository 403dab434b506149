package main

import (
	"os"

	"github.com/namesprouts/namesprouts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
