package lexer

import (
	"fmt"
	"math/big"
	"strings"
)

// decodeNumber converts a numeric literal to its decimal text. The prefix
// selects the base: 0x hexadecimal, 0b binary, a leading 0 octal.
func decodeNumber(lexeme string) (string, error) {
	n, ok := new(big.Int).SetString(lexeme, 0)
	if !ok {
		return "", fmt.Errorf("malformed number %q", lexeme)
	}
	return n.String(), nil
}

// unquote strips the delimiters of a string literal and resolves escaped
// delimiters. Both a doubled delimiter and a backslash followed by the
// delimiter stand for the delimiter itself. Other backslashes are kept.
func unquote(lexeme string) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	delim := lexeme[0]
	content := lexeme[1 : len(lexeme)-1]
	if strings.IndexByte(content, delim) < 0 && strings.IndexByte(content, '\\') < 0 {
		return content
	}
	var b strings.Builder
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '\\' && i+1 < len(content):
			if content[i+1] != delim {
				b.WriteByte(c)
			}
			i++
			b.WriteByte(content[i])
		case c == delim && i+1 < len(content) && content[i+1] == delim:
			i++
			b.WriteByte(delim)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
