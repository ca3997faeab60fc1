package frontend

import "regexp"

var (
	// A string literal statement or an empty statement at the cursor.
	literalRegExp = regexp.MustCompile(`^(?:'((?:\\.|[^'])*?)'|"((?:\\.|[^"])*?)"|;)`)
	// Whitespace and comments at the cursor.
	skipWhiteSpaceRegExp = regexp.MustCompile(
		`^(?:[\s\x{0b}\x{a0}\x{feff}\x{2028}\x{2029}\p{Zs}]|//[^\n\r\x{2028}\x{2029}]*|/\*(?s:.)*?\*/)*`)
)

// HasPragma reports whether the directive prologue of code contains pragma,
// such as "use strict".
func HasPragma(code, pragma string) bool {
	return HasPragmaAt(code, pragma, 0)
}

// HasPragmaAt is HasPragma scanning from byte offset pos. The raw content of
// each leading string literal is compared, so escapes are not decoded.
func HasPragmaAt(code, pragma string, pos int) bool {
	if pos < 0 {
		pos = 0
	}
	for pos <= len(code) {
		pos += len(skipWhiteSpaceRegExp.FindString(code[pos:]))

		match := literalRegExp.FindStringSubmatch(code[pos:])
		if match == nil {
			return false
		}
		content := match[1]
		if content == "" {
			content = match[2]
		}
		if content != "" && content == pragma {
			return true
		}
		pos += len(match[0])
	}
	return false
}
