package fsm

import (
	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/fsmparse/diag"
)

// Lookahead is a small pushback queue between a tokenizer and a parser.
// Tokens are pulled from the tokenizer only on demand.
//
// Once the tokenizer has signalled end of input, it is never called again.
type Lookahead struct {
	src   fsmparse.Tokenizer
	queue []fsmparse.Token // peeked or un-read tokens, in delivery order
	eof   bool
}

// NewLookahead creates a lookahead buffer on top of a tokenizer.
func NewLookahead(src fsmparse.Tokenizer) *Lookahead {
	return &Lookahead{src: src}
}

// Peek returns the next token without consuming it. Repeated calls return
// the identical token until Get is called.
func (la *Lookahead) Peek() (fsmparse.Token, error) {
	if len(la.queue) > 0 {
		return la.queue[0], nil
	}
	if la.eof {
		return fsmparse.EOF, nil
	}
	tok, err := la.src.NextToken()
	if err != nil {
		return fsmparse.EOF, err
	}
	if tok.IsEOF() {
		la.eof = true
		return fsmparse.EOF, nil
	}
	la.queue = append(la.queue, tok)
	return tok, nil
}

// Get consumes and returns the next token.
func (la *Lookahead) Get() (fsmparse.Token, error) {
	tok, err := la.Peek()
	if err != nil || tok.IsEOF() {
		return tok, err
	}
	la.queue = la.queue[1:]
	return tok, nil
}

// Unget pushes tokens back. They will be delivered in the given order, before
// any token not yet delivered. EOF tokens are ignored.
func (la *Lookahead) Unget(toks ...fsmparse.Token) {
	q := make([]fsmparse.Token, 0, len(toks)+len(la.queue))
	for _, tok := range toks {
		if !tok.IsEOF() {
			q = append(q, tok)
		}
	}
	la.queue = append(q, la.queue...)
}

// Location returns the source location of the underlying tokenizer, if it
// knows about one.
func (la *Lookahead) Location() diag.Location {
	if loc, ok := la.src.(diag.Locator); ok {
		return loc.Location()
	}
	return diag.Location{}
}
