// Command yrpconv transcodes legacy duel replay message streams into
// structured replay logs.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/yrpconv/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
