package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/pkg/golox"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long:  `Read Lox statements from stdin one line at a time, evaluating each against a session that persists globals across lines.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		sink := errors.NewSink(os.Stdout, os.Stderr)
		golox.REPL(os.Stdin, sink)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
