package scanner

import (
	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/token"
)

type Token struct {
	Kind token.Token

	OnNewLine bool
	HasEscape bool
	// Octal marks a legacy octal literal (017, 08) or a legacy octal escape
	// inside a string.
	Octal bool
	// Invalid marks a template piece whose escapes do not cook; allowed only
	// in tagged templates.
	Invalid bool

	// Value is the cooked value of identifiers, strings and template pieces.
	// For other tokens it is empty and the raw text is used instead.
	Value string

	Idx0, Idx1 ast.Idx
}

// String returns the cooked value if there is one, the raw text otherwise.
func (t Token) String(s *Scanner) string {
	switch t.Kind {
	case token.String, token.PrivateIdentifier,
		token.TemplateHead, token.TemplateMiddle, token.TemplateTail, token.NoSubstitutionTemplate:
		return t.Value
	}
	if token.ID(t.Kind) || t.Kind == token.EscapedReservedWord {
		return t.Value
	}
	return t.Raw(s)
}

func (t Token) Raw(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}

// TemplateLiteral returns the raw source text of a template literal piece,
// without the surrounding delimiters.
func (t Token) TemplateLiteral(s *Scanner) string {
	raw := s.src.Slice(t.Idx0, t.Idx1)
	switch t.Kind {
	case token.NoSubstitutionTemplate, token.TemplateTail:
		// ` ... ` or } ... `
		return raw[1 : len(raw)-1]
	case token.TemplateHead, token.TemplateMiddle:
		// ` ... ${ or } ... ${
		return raw[1 : len(raw)-2]
	}
	return raw
}
