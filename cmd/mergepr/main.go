package main

import (
	"os"

	"github.com/prkit/mergepr/cmd/mergepr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
