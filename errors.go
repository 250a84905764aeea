// errors.go — fault kinds and caret-snippet rendering.
//
// slang has exactly two user-visible fault kinds. Lexical and grammatical
// failures are syntax faults; operator contract violations, undefined
// names, division by zero, bad assignment targets, and out-of-range
// indexing are semantic faults. Both are unrecoverable at the point
// raised: the first fault terminates the run.
//
// The driver maps these to the fixed diagnostic strings "SYNTAX ERROR" and
// "SEMANTIC ERROR". The richer messages carried here (and the caret
// snippet produced by WrapErrorWithSource) exist for debugging and the
// REPL; they never leak into the fixed-string contract.
package slang

import (
	"errors"
	"fmt"
	"strings"
)

// LexError reports an input byte that matches no token production.
// Col is 0-based; Line is 1-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError reports token input that is not a prefix-to-end match of the
// grammar. Col is 0-based; Line is 1-based.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// SemanticError reports a runtime value that violates an operator or
// statement contract. It carries no position: the tree walker does not
// track source locations.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string {
	return "SEMANTIC ERROR: " + e.Msg
}

// IsSyntaxFault reports whether err is a lexical or grammatical failure.
func IsSyntaxFault(err error) bool {
	var le *LexError
	var pe *ParseError
	return errors.As(err, &le) || errors.As(err, &pe)
}

// IsSemanticFault reports whether err is a runtime contract violation.
func IsSemanticFault(err error) bool {
	var se *SemanticError
	return errors.As(err, &se)
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes lex and parse errors and
// leaves other errors untouched. Lex/parse Col values are 0-based and are
// rendered 1-based.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(src, "LEXICAL ERROR", e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", caretSnippet(src, "PARSE ERROR", e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

// caretSnippet builds a header plus the offending line with a caret under
// the 1-based column, including one line of context on each side when
// available. Out-of-range coordinates are clamped so rendering is safe on
// empty or truncated sources.
func caretSnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
