package main

import (
	"os"

	"github.com/abhisek/skillstars/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
