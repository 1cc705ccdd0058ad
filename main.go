package main

import (
	"context"
	"os"

	"github.com/tphakala/vowelnet/cmd"
)

func main() {
	rootCmd := cmd.RootCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
