package fsmparse

import "fmt"

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by a lexer and consumed
// by the parsing engine. They are small values and are copied, never mutated.
//
// An example would be a token for a hexadecimal number:
//
//    Kind = "NUM"    // category of the token, matched against table keys
//    Text = "175"    // canonical text, here the decimal value of 0xAF
//
// Kind "" is reserved for end of input and is never produced for real input.
type Token struct {
	Kind string
	Text string
}

// EOF is the end-of-input token.
var EOF = Token{}

// MakeToken creates a token of a given kind.
func MakeToken(kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// IsEOF is a predicate: does t denote end of input?
func (t Token) IsEOF() bool {
	return t.Kind == ""
}

// Less orders tokens by kind, then by text.
func (t Token) Less(other Token) bool {
	if t.Kind != other.Kind {
		return t.Kind < other.Kind
	}
	return t.Text < other.Text
}

func (t Token) String() string {
	if t.IsEOF() {
		return "EOF"
	}
	if t.Kind == t.Text {
		return fmt.Sprintf("%q", t.Text)
	}
	return fmt.Sprintf("%s=%q", t.Kind, t.Text)
}

// Tokenizer is the interface for token producers. NextToken returns EOF
// once input is exhausted. Errors are fatal for the current input.
type Tokenizer interface {
	NextToken() (Token, error)
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func() (Token, error)

// NextToken is part of the Tokenizer interface.
func (f TokenizerFunc) NextToken() (Token, error) {
	return f()
}

// Tokens returns a Tokenizer delivering a fixed sequence of tokens, followed
// by EOF.
func Tokens(toks ...Token) Tokenizer {
	i := 0
	return TokenizerFunc(func() (Token, error) {
		if i >= len(toks) {
			return EOF, nil
		}
		i++
		return toks[i-1], nil
	})
}
