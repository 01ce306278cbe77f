package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/sgrep/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(cmd.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		// Usage errors were already printed together with the usage text
		if errors.Is(err, cmd.ErrUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
