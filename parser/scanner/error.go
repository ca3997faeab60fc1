package scanner

import (
	"fmt"

	"github.com/t14raptor/go-esm/ast"
)

type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (d Error) Error() string {
	return d.Message
}

func invalidCharacter(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Unexpected character '%c'", c),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated string constant",
		Start:   start,
		End:     end,
	}
}

func unterminatedTemplateLiteral(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated template",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultiLineComment(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated comment",
		Start:   start,
		End:     end,
	}
}

func unterminatedRegExp(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated regular expression",
		Start:   start,
		End:     end,
	}
}

func invalidEscapeSequence(start, end ast.Idx) Error {
	return Error{
		Message: "Bad character escape sequence",
		Start:   start,
		End:     end,
	}
}

func invalidNumber(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid number",
		Start:   start,
		End:     end,
	}
}

func invalidNumberEnd(start, end ast.Idx) Error {
	return Error{
		Message: "Identifier directly after number",
		Start:   start,
		End:     end,
	}
}

func invalidUnicodeEscapeSequence(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid Unicode escape",
		Start:   start,
		End:     end,
	}
}

func regExpFlag(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Invalid regular expression flag '%c'", c),
		Start:   start,
		End:     end,
	}
}

func regExpFlagTwice(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Duplicate regular expression flag '%c'", c),
		Start:   start,
		End:     end,
	}
}
