package fsm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/fsmparse/diag"
)

// ErrUnknownRule is returned by Parse if a requested rule is not bound in
// the table.
var ErrUnknownRule = errors.New("unknown rule")

// ErrNoStart is returned by Parse if no rule is requested and the table has
// no default start state.
var ErrNoStart = errors.New("no start state")

// ParseError is the error returned by the parser if a state has neither an
// entry for the lookahead token nor a wildcard entry.
type ParseError struct {
	State    int            // state in which the parser got stuck
	Expected []string       // sorted dispatch keys of State
	Found    fsmparse.Token // offending lookahead token, or EOF
	Loc      diag.Location  // source location, if known
}

func (e *ParseError) Error() string {
	return strings.TrimSuffix(diag.Format(diag.Error, e.Loc, e.Message()), "\n")
}

// Message returns the error message without location prefix.
func (e *ParseError) Message() string {
	found := e.Found.String()
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("unexpected %s", found)
	case 1:
		return fmt.Sprintf("expected %s, found %s", keyString(e.Expected[0]), found)
	}
	keys := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		keys[i] = keyString(k)
	}
	return fmt.Sprintf("expected one of (%s), found %s", strings.Join(keys, ", "), found)
}

func keyString(key string) string {
	if key == EOFKey {
		return "EOF"
	}
	return key
}
