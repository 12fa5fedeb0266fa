// Command golox is the interpreter's command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/sdcook/golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode())
	}
}
