// Package cmd implements golox's cobra-based CLI.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left at its default for local builds.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:     "golox",
	Short:   "A tree-walking interpreter for the Lox language",
	Long:    `golox scans, parses, resolves, and interprets Lox programs.`,
	Version: Version,
}

// exitCode records the process exit status a subcommand wants: 0 success,
// 65 a scan/parse/resolve error, 70 an uncaught runtime error, 64 a
// command-line usage error.
var exitCode int

// ExitCode returns the exit status the last executed subcommand recorded.
func ExitCode() int { return exitCode }

func setExitCode(code int) {
	if code > exitCode {
		exitCode = code
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		setExitCode(64)
		return err
	}
	return nil
}
