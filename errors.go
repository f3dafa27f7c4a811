// errors.go — typed faults and caret-snippet rendering for user-facing reports.
//
// Mirrors the teacher's errors.go: lexer and parser diagnostics carry a
// 1-based Line/Col, and WrapErrorWithSource turns either of them into a
// readable, multi-line snippet with a caret under the offending column. The
// evaluator and parser themselves only ever return the plain typed errors
// below; rendering a snippet is a host/CLI concern (cmd/mython), same
// separation the teacher keeps between interpreter.go and errors.go.
package mython

import (
	"fmt"
	"strings"
)

// TypeErrorKind distinguishes the handful of TypeError causes callers may
// want to branch on without string-matching the message.
type TypeErrorKind int

const (
	TypeErrGeneric TypeErrorKind = iota
	TypeErrDivByZero
	TypeErrArity
	TypeErrNoMethod
)

// LexError reports a tokenization fault: unterminated string, or any other
// lexer-detected malformation.
type LexError struct {
	Line, Col int
	Msg       string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError reports a syntax fault raised while building the AST.
type ParseError struct {
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// NameError reports a missing variable, a dotted access through a
// non-instance, or a field access on a non-instance.
type NameError struct {
	Line, Col int
	Msg       string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name error: %s", e.Msg)
}

// TypeError reports an operator applied to incompatible operands, a missing
// or wrong-arity method call, or division by zero.
type TypeError struct {
	Line, Col int
	Kind      TypeErrorKind
	Msg       string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s", e.Msg)
}

func newTypeError(kind TypeErrorKind, format string, args ...any) *TypeError {
	return &TypeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func newNameError(format string, args ...any) *NameError {
	return &NameError{Msg: fmt.Sprintf(format, args...)}
}

// located is implemented by faults that carry a source position.
type located interface {
	position() (line, col int)
}

func (e *LexError) position() (int, int)   { return e.Line, e.Col }
func (e *ParseError) position() (int, int) { return e.Line, e.Col }

// WrapErrorWithSource augments err with a caret-annotated snippet of src
// when err carries a source position (*LexError, *ParseError). Any other
// error, including *NameError/*TypeError (which are positionless at the
// evaluator layer — the evaluator doesn't track a current line/col per
// node), is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	if err == nil {
		return nil
	}
	loc, ok := err.(located)
	if !ok {
		return err
	}
	line, col := loc.position()
	return fmt.Errorf("%s\n%s", err.Error(), caretSnippet(src, line, col))
}

// caretSnippet renders up to one line of context before and after the
// faulting line, numbers the lines, and places a caret under the 1-based
// column. Out-of-range line/col are clamped so the caret can always be
// rendered.
func caretSnippet(src string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if line < 1 {
		return ""
	}

	var b strings.Builder
	start := line - 1
	if start < 1 {
		start = 1
	}
	end := line + 1
	if end > len(lines) {
		end = len(lines)
	}

	for n := start; n <= end; n++ {
		fmt.Fprintf(&b, "%4d | %s\n", n, lines[n-1])
		if n == line {
			lineLen := len(lines[n-1])
			c := col
			if c < 1 {
				c = 1
			}
			if c > lineLen+1 {
				c = lineLen + 1
			}
			fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", c-1))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
