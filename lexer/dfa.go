package lexer

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the DFA.
const (
	tokNum int = iota
	tokString
	tokName
	tokOperator
	tokDirective
	tokChar // single character fallback, never produced by the DFA
)

// Multi-character operators are listed first, but the DFA will select the
// longest match anyway.
var operators = []string{"<<", ">>", "==", "!=", ">=", "<=",
	"<", ">", "=", "!", "(", ")", "+", "-", "*", "/", "%", ",", ":"}

var dfa struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// lineLexer returns the compiled DFA. It is compiled on first use and shared
// between all lexers.
func lineLexer() (*lexmachine.Lexer, error) {
	dfa.once.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`0[xX]([0-9]|[a-f]|[A-F])+`), makeToken(tokNum))
		lexer.Add([]byte(`0[bB](0|1)+`), makeToken(tokNum))
		lexer.Add([]byte(`0[0-7]+`), makeToken(tokNum))
		lexer.Add([]byte(`[1-9][0-9]*`), makeToken(tokNum))
		lexer.Add([]byte(`0`), makeToken(tokNum))
		lexer.Add([]byte(`'([^'\\]|''|\\'|\\[^'])*'`), makeToken(tokString))
		lexer.Add([]byte(`\"([^"\\]|\"\"|\\\"|\\[^"])*\"`), makeToken(tokString))
		for _, op := range operators {
			r := "\\" + strings.Join(strings.Split(op, ""), "\\")
			lexer.Add([]byte(r), makeToken(tokOperator))
		}
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokName))
		lexer.Add([]byte(`\#[^\n]*`), makeToken(tokDirective))
		lexer.Add([]byte(`( |\t)+`), skip)
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			dfa.err = err
			return
		}
		dfa.lexer = lexer
	})
	return dfa.lexer, dfa.err
}

// skip is a DFA action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a DFA action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// lineScanner scans a single line of input.
type lineScanner struct {
	scanner *lexmachine.Scanner
	count   int // number of matches delivered
}

func newLineScanner(line string) (*lineScanner, error) {
	lexer, err := lineLexer()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	return &lineScanner{scanner: s}, nil
}

// first is a predicate: is the next match the first one of the line?
func (ls *lineScanner) first() bool {
	return ls.count == 0
}

// next returns the type and lexeme of the next match. Input not matched by
// the DFA is returned one character at a time as tokChar. ok is false at the
// end of the line.
func (ls *lineScanner) next() (typ int, lexeme string, ok bool, err error) {
	tok, err, eof := ls.scanner.Next()
	if eof {
		return 0, "", false, nil
	}
	if err != nil {
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return 0, "", false, err
		}
		r, size := utf8.DecodeRune(ls.scanner.Text[ui.StartTC:])
		ls.scanner.TC = ui.StartTC + size
		ls.count++
		if r == utf8.RuneError && size <= 1 {
			return tokChar, string(ls.scanner.Text[ui.StartTC : ui.StartTC+size]), true, nil
		}
		return tokChar, string(r), true, nil
	}
	token := tok.(*lexmachine.Token)
	ls.count++
	return token.Type, string(token.Lexeme), true, nil
}
