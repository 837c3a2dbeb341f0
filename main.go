package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/wordbank/internal/cli"
	"github.com/mrlokans/wordbank/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	rootCmd := cli.NewRootCommand(cfg, fmt.Sprintf("%s (%s)", Version, Commit))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
