package frontend

import (
	"errors"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
)

// ErrorFunc builds the error a caller wants raised from a formatted syntax
// error message.
type ErrorFunc func(message string) error

// Error is a syntax error re-expressed through an ErrorFunc. It unwraps to
// both the caller's error and the underlying *parser.SyntaxError.
type Error struct {
	Err     error
	Message string
	Idx     ast.Idx
	Line    int
	Column  int
	Cause   *parser.SyntaxError
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{e.Err, e.Cause}
}

// Raise stops parsing with a syntax error at idx. With a nil kind the error is
// a *parser.SyntaxError; otherwise it is an *Error whose Err is built by kind
// from the formatted message. Raise does not return.
func Raise(p *parser.Parser, idx ast.Idx, message string, kind ErrorFunc) {
	if kind == nil {
		p.Raise(idx, "%s", message)
	}

	err := p.Catch(func() {
		p.Raise(idx, "%s", message)
	})
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		p.Abort(err)
	}
	p.Abort(&Error{
		Err:     kind(se.Error()),
		Message: se.Message,
		Idx:     se.Idx,
		Line:    se.Line,
		Column:  se.Column,
		Cause:   se,
	})
}

// Unexpected raises "Unexpected token" at the current token.
func Unexpected(p *parser.Parser) {
	UnexpectedAt(p, p.Offset())
}

// UnexpectedAt raises "Unexpected token" at idx.
func UnexpectedAt(p *parser.Parser, idx ast.Idx) {
	Raise(p, idx, "Unexpected token", nil)
}
