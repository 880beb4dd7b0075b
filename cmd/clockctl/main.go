package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rook-computer/streamclock/internal/cli"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("clockctl"),
		kong.Description("Build, inspect and preview stream clock overlays."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)
	defer c.Close()

	if err := ctx.Run(&c.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		c.Close()
		os.Exit(1)
	}
}
