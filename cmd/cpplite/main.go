package main

import (
	"os"

	"github.com/msto63/cpplite/cmd/cpplite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
