package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdcook/golox/internal/token"
)

// Print renders expr in a canonical, fully-parenthesized prefix form.
// The same tree always prints the same text. Explicit parentheses in the
// source are kept as a "(group ...)" node, so differently grouped sources
// print differently.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return printLiteral(n.Value)
	case *Grouping:
		return parenthesize("group", n.Inner)
	case *Unary:
		return parenthesize(n.Op.Lexeme, n.Operand)
	case *Binary:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Logical:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Call:
		return parenthesize("call "+Print(n.Callee), n.Args...)
	case *Get:
		return parenthesize(". "+n.Name.Lexeme, n.Object)
	case *Set:
		return parenthesize("=. "+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		return "this"
	case *Super:
		return "super." + n.Method.Lexeme
	case *AnonymousFunction:
		return fmt.Sprintf("(fun (%s) ...)", joinParams(n.Params))
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

func joinParams(params []token.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, ", ")
}
