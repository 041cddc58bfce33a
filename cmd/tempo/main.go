package main

import (
	"os"

	"github.com/go-drift/tempo/cmd/tempo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
