package main

import (
	"os"

	"github.com/routesim/vrptw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
