package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Scan a Lox script and print its tokens",
	Long: `Scan a Lox program and print one line per token, in the format
TYPE lexeme literal. Reads from stdin if no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		setExitCode(64)
		return err
	}

	sink := errors.NewSink(os.Stdout, os.Stderr)
	scanner := lexer.New(source, sink)
	tokens := scanner.ScanTokens()
	for _, tok := range tokens {
		fmt.Fprintln(os.Stdout, tok.String())
	}

	if sink.HadError {
		setExitCode(65)
		return fmt.Errorf("scanning failed")
	}
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
