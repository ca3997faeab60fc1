package scanner_test

import (
	"testing"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser/scanner"
	"github.com/t14raptor/go-esm/token"
)

func scanAll(src string) (*scanner.Scanner, []scanner.Token) {
	s := scanner.NewScanner(src)
	var toks []scanner.Token
	for {
		s.Next()
		toks = append(toks, s.Token)
		if s.Token.Kind == token.Eof || s.Token.Kind == token.Illegal {
			return s, toks
		}
	}
}

func TestScanTokens(t *testing.T) {
	s, toks := scanAll("var a = 'b' + 1.5e3;\nfoo")
	want := []token.Token{
		token.Var, token.Identifier, token.Assign, token.String, token.Plus,
		token.Number, token.Semicolon, token.Identifier, token.Eof,
	}
	if len(toks) != len(want) {
		t.Fatalf("tokens = %d; want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d = %v; want %v", i, toks[i].Kind, k)
		}
	}
	if got := toks[3].String(s); got != "b" {
		t.Errorf("string value = %q; want \"b\"", got)
	}
	if got := toks[5].Raw(s); got != "1.5e3" {
		t.Errorf("number raw = %q; want \"1.5e3\"", got)
	}
	if !toks[7].OnNewLine || toks[6].OnNewLine {
		t.Errorf("newline flags = %v, %v; want false, true", toks[6].OnNewLine, toks[7].OnNewLine)
	}
	if toks[7].Idx0 != 21 || toks[7].Idx1 != 24 {
		t.Errorf("foo span = [%d, %d); want [21, 24)", toks[7].Idx0, toks[7].Idx1)
	}
}

func TestScanComments(t *testing.T) {
	_, toks := scanAll("/* a\n */ x // y\nz")
	if len(toks) != 3 {
		t.Fatalf("tokens = %d; want 3", len(toks))
	}
	if !toks[0].OnNewLine {
		t.Errorf("x after multi-line comment not on a new line")
	}
	if !toks[1].OnNewLine {
		t.Errorf("z after line comment not on a new line")
	}
}

func TestScanEscapedIdentifier(t *testing.T) {
	s, toks := scanAll(`\u0061b`)
	if toks[0].Kind != token.Identifier {
		t.Fatalf("kind = %v; want Identifier", toks[0].Kind)
	}
	if !toks[0].HasEscape {
		t.Errorf("HasEscape not set")
	}
	if got := toks[0].String(s); got != "ab" {
		t.Errorf("value = %q; want \"ab\"", got)
	}
}

func TestScanContextualKeywords(t *testing.T) {
	s, toks := scanAll("let async await yield of")
	for i, k := range []token.Token{token.Let, token.Async, token.Await, token.Yield, token.Of} {
		if toks[i].Kind != k {
			t.Errorf("token %d = %v; want %v", i, toks[i].Kind, k)
		}
		if !token.ID(toks[i].Kind) {
			t.Errorf("%s is not an identifier token", toks[i].String(s))
		}
	}
}

func TestScanErrors(t *testing.T) {
	cases := map[string]string{
		"'abc":   "Unterminated string constant",
		"/* abc": "Unterminated comment",
	}
	for src, msg := range cases {
		s, toks := scanAll(src)
		if last := toks[len(toks)-1]; last.Kind != token.Illegal {
			t.Errorf("%q: last token = %v; want Illegal", src, last.Kind)
			continue
		}
		if s.Err == nil || s.Err.Message != msg {
			t.Errorf("%q: error = %v; want %q", src, s.Err, msg)
		}
		if s.Err != nil && s.Err.Start != ast.Idx(0) {
			t.Errorf("%q: error start = %d; want 0", src, s.Err.Start)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := scanner.NewScanner("a b c")
	s.Next()
	c := *s
	c.Next()
	c.Next()
	if got := s.Token.Raw(s); got != "a" {
		t.Errorf("scanner token = %q; want \"a\"", got)
	}
	s.Next()
	if got := s.Token.Raw(s); got != "b" {
		t.Errorf("scanner next = %q; want \"b\"", got)
	}
}

func TestNumberValue(t *testing.T) {
	cases := []struct {
		raw    string
		value  float64
		bigint bool
	}{
		{"42", 42, false},
		{"1.5e3", 1500, false},
		{"0x1F", 31, false},
		{"0o17", 15, false},
		{"0b101", 5, false},
		{"017", 15, false},
		{"08", 8, false},
		{"1_000", 1000, false},
		{"10n", 10, true},
		{"0xffffffffffffffffff", 4722366482869645213696, false},
	}
	for _, c := range cases {
		value, bigint, err := scanner.NumberValue(c.raw)
		if err != nil {
			t.Errorf("NumberValue(%q): %v", c.raw, err)
			continue
		}
		if value != c.value || bigint != c.bigint {
			t.Errorf("NumberValue(%q) = %v, %v; want %v, %v", c.raw, value, bigint, c.value, c.bigint)
		}
	}
}
