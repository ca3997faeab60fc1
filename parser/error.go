package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser/scanner"
	"github.com/t14raptor/go-esm/token"
)

var (
	// ErrInvalidOptions is wrapped by every option validation failure.
	ErrInvalidOptions = errors.New("invalid parser options")
	// ErrHooksFrozen is returned when an extension is installed after parsing
	// has started.
	ErrHooksFrozen = errors.New("extensions must be installed before parsing")
)

// SyntaxError is a positioned parse failure. Line is 1-based and Column is
// 0-based, both counted in bytes.
type SyntaxError struct {
	Message string
	Idx     ast.Idx
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Line, e.Column)
}

// abort carries a failure up to the nearest Catch.
type abort struct {
	err error
}

// Position converts a source offset to a line and column.
func Position(src string, idx ast.Idx) (line, column int) {
	if int(idx) > len(src) {
		idx = ast.Idx(len(src))
	}
	line, lineStart := 1, 0
	for i := 0; i < int(idx); i++ {
		switch c := src[i]; c {
		case '\n':
			line, lineStart = line+1, i+1
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			line, lineStart = line+1, i+1
		case 0xe2:
			// U+2028 and U+2029 are e2 80 a8 and e2 80 a9.
			if i+2 < len(src) && src[i+1] == 0x80 && (src[i+2] == 0xa8 || src[i+2] == 0xa9) {
				i += 2
				line, lineStart = line+1, i+1
			}
		}
	}
	return line, int(idx) - lineStart
}

// NewSyntaxError builds a SyntaxError for the source being parsed.
func (p *Parser) NewSyntaxError(idx ast.Idx, msg string) *SyntaxError {
	line, column := Position(p.str, idx)
	return &SyntaxError{Message: msg, Idx: idx, Line: line, Column: column}
}

// Abort stops parsing with err. Parse returns err unchanged.
func (p *Parser) Abort(err error) {
	panic(abort{err: err})
}

// Raise stops parsing with a SyntaxError at idx.
func (p *Parser) Raise(idx ast.Idx, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	p.Abort(p.NewSyntaxError(idx, msg))
}

// Catch runs fn and returns the error it aborted with, if any. Panics that
// did not come from Abort are re-raised.
func (p *Parser) Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if a, ok := r.(abort); ok {
				err = a.err
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// Unexpected fails at the current token.
func (p *Parser) Unexpected() {
	p.UnexpectedAt(p.token.Idx0)
}

// UnexpectedAt fails with the generic unexpected token message at idx.
func (p *Parser) UnexpectedAt(idx ast.Idx) {
	if p.token.Kind == token.Eof && idx == p.token.Idx0 {
		p.Raise(idx, "Unexpected end of input")
	}
	p.Raise(idx, "Unexpected token")
}

// RaiseRecoverable reports a malformed construct the grammar could still
// represent. When an installed extension accepts it, the irregularity is
// recorded on the program and returned so the caller can annotate its node;
// otherwise parsing stops.
func (p *Parser) RaiseRecoverable(kind ast.IrregularityKind, idx ast.Idx, msg string) ast.Irregularity {
	irr := ast.Irregularity{Kind: kind, Idx: idx, Message: msg}
	for _, hook := range p.hooks.recoverable {
		if hook(p, irr) {
			p.program.Irregularities = append(p.program.Irregularities, irr)
			return irr
		}
	}
	p.Raise(idx, msg)
	return irr
}

func (p *Parser) errorUnexpectedToken(tkn scanner.Token) {
	switch tkn.Kind {
	case token.Eof:
		p.Raise(tkn.Idx0, "Unexpected end of input")
	case token.EscapedReservedWord:
		p.Raise(tkn.Idx0, "Keyword must not contain escaped characters")
	case token.Illegal:
		if p.scanner.Err != nil {
			p.Raise(p.scanner.Err.Start, p.scanner.Err.Message)
		}
	}
	p.Raise(tkn.Idx0, "Unexpected token")
}

// quote formats a name for error messages.
func quote(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "\\'") + "'"
}
