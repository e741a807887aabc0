package main

import (
	"fmt"
	"os"

	"github.com/jrc03c/matching-game-demo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
