package main

import (
	"fmt"
	"os"

	"github.com/cleared-dev/b2fa/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		if commands.IsUsageError(err) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
