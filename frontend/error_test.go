package frontend_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/frontend"
	"github.com/t14raptor/go-esm/parser"
	"github.com/t14raptor/go-esm/token"
)

var errCompile = errors.New("compile error")

func compileError(message string) error {
	return fmt.Errorf("%w: %s", errCompile, message)
}

// onDebugger runs fn when a debugger statement is reached.
type onDebugger func(p *parser.Parser)

func (onDebugger) Name() string { return "on-debugger" }

func (fn onDebugger) Install(h *parser.Hooks) error {
	return h.OnStatement(func(p *parser.Parser) (*ast.Statement, bool) {
		if p.Kind() != token.Debugger {
			return nil, false
		}
		fn(p)
		return nil, false
	})
}

func parseWith(code string, fn func(p *parser.Parser)) error {
	p, err := frontend.New(code, nil)
	if err != nil {
		return err
	}
	if err := p.Install(onDebugger(fn)); err != nil {
		return err
	}
	_, err = p.Parse()
	return err
}

func TestRaiseWithErrorFunc(t *testing.T) {
	err := parseWith("a;\ndebugger", func(p *parser.Parser) {
		frontend.Raise(p, p.Offset(), "boom", compileError)
	})
	require.Error(t, err)

	assert.True(t, errors.Is(err, errCompile))
	assert.Equal(t, "compile error: boom (2:0)", err.Error())

	var fe *frontend.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "boom", fe.Message)
	assert.Equal(t, ast.Idx(3), fe.Idx)
	assert.Equal(t, 2, fe.Line)
	assert.Equal(t, 0, fe.Column)

	var se *parser.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, fe.Cause, se)
	assert.Equal(t, "boom (2:0)", se.Error())
}

func TestRaiseWithoutErrorFunc(t *testing.T) {
	err := parseWith("debugger", func(p *parser.Parser) {
		frontend.Raise(p, 0, "plain", nil)
	})
	se, ok := err.(*parser.SyntaxError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, "plain", se.Message)
	assert.Equal(t, 1, se.Line)
	assert.Equal(t, 0, se.Column)
}

func TestRaiseFormatsOnce(t *testing.T) {
	err := parseWith("debugger", func(p *parser.Parser) {
		frontend.Raise(p, 0, "100%", nil)
	})
	var se *parser.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "100%", se.Message)
}

func TestUnexpected(t *testing.T) {
	err := parseWith("x;  debugger", func(p *parser.Parser) {
		frontend.Unexpected(p)
	})
	var se *parser.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Unexpected token", se.Message)
	assert.Equal(t, ast.Idx(4), se.Idx)

	err = parseWith("debugger", func(p *parser.Parser) {
		frontend.UnexpectedAt(p, ast.Idx(len(p.Source())))
	})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Unexpected token", se.Message)
	assert.Equal(t, ast.Idx(8), se.Idx)
}

func TestLookahead(t *testing.T) {
	var peeks []parser.Peek
	err := parseWith("debugger\nfoo", func(p *parser.Parser) {
		peeks = append(peeks, frontend.Lookahead(p), frontend.Lookahead(p))
		assert.Equal(t, token.Debugger, p.Kind())
	})
	require.NoError(t, err)
	require.Len(t, peeks, 2)
	assert.Equal(t, peeks[0], peeks[1])
	assert.True(t, peeks[0].Is("foo"))
	assert.True(t, peeks[0].OnNewLine)
	assert.Equal(t, ast.Idx(9), peeks[0].Idx0)
}
