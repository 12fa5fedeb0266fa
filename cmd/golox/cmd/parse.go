package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdcook/golox/internal/ast"
	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/lexer"
	"github.com/sdcook/golox/internal/parser"
)

var parseExpr bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox script and print its AST",
	Long: `Parse a Lox program and print each top-level expression statement
in canonical fully-parenthesized form; other statements produce no
output. With --expression, parses a single expression instead of a full
program.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpr, "expression", "e", false, "parse a single expression")
}

func runParse(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		setExitCode(64)
		return err
	}

	sink := errors.NewSink(os.Stdout, os.Stderr)
	scanner := lexer.New(source, sink)
	tokens := scanner.ScanTokens()
	if sink.HadError {
		setExitCode(65)
		return fmt.Errorf("scanning failed")
	}

	p := parser.New(tokens, sink)
	if parseExpr {
		expr := p.ParseExpression()
		if sink.HadError {
			setExitCode(65)
			return fmt.Errorf("parsing failed")
		}
		fmt.Fprintln(os.Stdout, ast.Print(expr))
		return nil
	}

	stmts := p.Parse()
	if sink.HadError {
		setExitCode(65)
		return fmt.Errorf("parsing failed")
	}
	for _, s := range stmts {
		if exprStmt, ok := s.(*ast.Expression); ok {
			fmt.Fprintln(os.Stdout, ast.Print(exprStmt.Expr))
		}
	}
	return nil
}
