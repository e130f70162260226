package main

import (
	"os"

	"github.com/hostops-ai/hostops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
