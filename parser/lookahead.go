package parser

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

// Peek describes the token after the current one.
type Peek struct {
	Kind      token.Token
	Value     string
	Raw       string
	Idx0      ast.Idx
	Idx1      ast.Idx
	OnNewLine bool
	HasEscape bool
}

// Lookahead scans the token following the cursor of p without moving it. The
// scan runs on a private copy of the scanner, so p is never modified.
func Lookahead(p *Parser) Peek {
	s := *p.scanner
	s.Err = nil
	s.Next()
	return Peek{
		Kind:      s.Token.Kind,
		Value:     s.Token.String(&s),
		Raw:       s.Token.Raw(&s),
		Idx0:      s.Token.Idx0,
		Idx1:      s.Token.Idx1,
		OnNewLine: s.Token.OnNewLine,
		HasEscape: s.Token.HasEscape,
	}
}

// Is reports whether the peeked token is the unescaped word name.
func (pk Peek) Is(name string) bool {
	return token.ID(pk.Kind) && !pk.HasEscape && pk.Value == name
}

func (p *Parser) peek() Peek {
	return Lookahead(p)
}
