package main

import (
	"os"

	"github.com/mwhitten/gitgym/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
