package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/pkg/golox"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox script",
	Long: `Execute a Lox program from a file or an inline expression.

Examples:
  golox run script.lox
  golox run -e "print 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	sink := errors.NewSink(os.Stdout, os.Stderr)

	switch {
	case evalExpr != "":
		golox.Run(evalExpr, sink)
	case len(args) == 1:
		if err := golox.RunFile(args[0], sink); err != nil {
			setExitCode(64)
			return err
		}
	default:
		setExitCode(64)
		return fmt.Errorf("either provide a script path or use -e for inline source")
	}

	switch {
	case sink.HadRuntimeError:
		setExitCode(70)
		return fmt.Errorf("runtime error")
	case sink.HadError:
		setExitCode(65)
		return fmt.Errorf("script failed to run")
	}
	return nil
}
