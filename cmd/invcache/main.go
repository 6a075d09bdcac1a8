// Command invcache inverts matrices from a scenario file through the
// single-entry inverse cache.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/invcache/internal/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // set by the linker

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := cli.NewRootCmd(version)
	root.SetArgs(args)

	return root.Execute()
}
