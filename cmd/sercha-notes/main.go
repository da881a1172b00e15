// Package main is the entry point for the sercha-notes CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
