// Package golox is the public façade over the interpreter pipeline: scan,
// parse, resolve, interpret.
package golox

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sdcook/golox/internal/errors"
	"github.com/sdcook/golox/internal/interp"
	"github.com/sdcook/golox/internal/lexer"
	"github.com/sdcook/golox/internal/parser"
	"github.com/sdcook/golox/internal/resolver"
)

// Run scans, parses, resolves, and interprets source in one shot,
// reporting every diagnostic through sink. It returns after the first
// stage that recorded an error: a syntax error skips resolution and
// interpretation; a resolution error skips interpretation.
func Run(source string, sink *errors.Sink) {
	scanner := lexer.New(source, sink)
	tokens := scanner.ScanTokens()
	if sink.HadError {
		return
	}

	p := parser.New(tokens, sink)
	stmts := p.Parse()
	if sink.HadError {
		return
	}

	res := resolver.New(sink)
	res.Resolve(stmts)
	if sink.HadError {
		return
	}

	in := interp.New(sink, res.Locals)
	in.Interpret(stmts)
}

// RunFile reads path, transcoding UTF-16 source (detected via a leading
// BOM) to UTF-8 before scanning; UTF-8 source passes through unchanged
// apart from a leading UTF-8 BOM, which is dropped.
func RunFile(path string, sink *errors.Sink) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("golox: reading %s: %w", path, err)
	}

	source, err := decodeSource(raw)
	if err != nil {
		return fmt.Errorf("golox: decoding %s: %w", path, err)
	}

	Run(source, sink)
	return nil
}

// decodeSource sniffs a UTF-16 BOM and transcodes to UTF-8; plain UTF-8
// (BOM or not) is returned unchanged, stripping only a UTF-8 BOM if
// present.
func decodeSource(raw []byte) (string, error) {
	switch {
	case len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xFE:
		return transcodeUTF16(raw, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM))
	case len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF:
		return transcodeUTF16(raw, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM))
	case len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF:
		return string(raw[3:]), nil
	default:
		return string(raw), nil
	}
}

func transcodeUTF16(raw []byte, enc encoding.Encoding) (string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// REPL runs an interactive read-eval-print loop over in, writing prompts
// and output through sink. A single resolver and a single interpreter
// (and therefore a single global environment and locals table) persist
// across lines, so a `var` or `fun` declared on one line is visible to
// every line after it. Only the sink's per-line error flags reset between
// iterations, so one bad line doesn't end the session.
func REPL(in io.Reader, sink *errors.Sink) {
	reader := bufio.NewReader(in)
	res := resolver.New(sink)
	interpreter := interp.New(sink, res.Locals)

	for {
		fmt.Fprint(sink.Out, "> ")
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}

		sink.Reset()

		scanner := lexer.New(line, sink)
		tokens := scanner.ScanTokens()
		if !sink.HadError {
			p := parser.New(tokens, sink)
			stmts := p.Parse()
			if !sink.HadError {
				res.Resolve(stmts)
				if !sink.HadError {
					interpreter.Interpret(stmts)
				}
			}
		}

		if err != nil {
			return
		}
	}
}
