package fsm

import (
	"errors"
	"testing"

	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/fsmparse/diag"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// strictTokenizer fails if it is called again after having signalled EOF.
type strictTokenizer struct {
	toks []fsmparse.Token
	done bool
}

var errCalledAfterEOF = errors.New("tokenizer called after EOF")

func (st *strictTokenizer) NextToken() (fsmparse.Token, error) {
	if st.done {
		return fsmparse.EOF, errCalledAfterEOF
	}
	if len(st.toks) == 0 {
		st.done = true
		return fsmparse.EOF, nil
	}
	tok := st.toks[0]
	st.toks = st.toks[1:]
	return tok, nil
}

func (st *strictTokenizer) Location() diag.Location {
	return diag.Location{Name: "strict", Line: 1}
}

func TestLookaheadPeekGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	a, b := fsmparse.MakeToken("A", "a"), fsmparse.MakeToken("B", "b")
	la := NewLookahead(&strictTokenizer{toks: []fsmparse.Token{a, b}})
	for i := 0; i < 3; i++ {
		if tok, _ := la.Peek(); tok != a {
			t.Fatalf("expected repeated peek to return A, have %v", tok)
		}
	}
	if tok, _ := la.Get(); tok != a {
		t.Errorf("expected to get A, have %v", tok)
	}
	la.Unget(a)
	if tok, _ := la.Get(); tok != a {
		t.Errorf("expected un-get of A to be re-read, have %v", tok)
	}
	if tok, _ := la.Get(); tok != b {
		t.Errorf("expected to get B, have %v", tok)
	}
	for i := 0; i < 3; i++ {
		tok, err := la.Get()
		if err != nil || !tok.IsEOF() {
			t.Fatalf("expected stable EOF, have %v, %v", tok, err)
		}
	}
	if loc := la.Location(); loc.Name != "strict" {
		t.Errorf("expected location to be taken from tokenizer, have %v", loc)
	}
}

func TestLookaheadUngetOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	x, y, z := fsmparse.MakeToken("X", "x"), fsmparse.MakeToken("Y", "y"), fsmparse.MakeToken("Z", "z")
	la := NewLookahead(fsmparse.Tokens(z))
	la.Peek()
	la.Unget(x, fsmparse.EOF, y)
	var seq []fsmparse.Token
	for {
		tok, err := la.Get()
		if err != nil {
			t.Fatal(err)
		}
		if tok.IsEOF() {
			break
		}
		seq = append(seq, tok)
	}
	if len(seq) != 3 || seq[0] != x || seq[1] != y || seq[2] != z {
		t.Errorf("expected sequence X Y Z, have %v", seq)
	}
	if loc := la.Location(); loc != (diag.Location{}) {
		t.Errorf("expected no location for plain tokenizer, have %v", loc)
	}
}

func TestLookaheadError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	failing := fsmparse.TokenizerFunc(func() (fsmparse.Token, error) {
		return fsmparse.EOF, errCalledAfterEOF
	})
	la := NewLookahead(failing)
	if _, err := la.Peek(); !errors.Is(err, errCalledAfterEOF) {
		t.Errorf("expected tokenizer error to be passed through, have %v", err)
	}
}
