package fsm

import (
	"fmt"

	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/fsmparse/diag"
)

// Parser is a table-driven parser. Create and initialize one with
// fsm.NewParser(...)
type Parser struct {
	table *Table
	input *Lookahead
	UData interface{} // extension point for action functions
}

// Option configures a parser.
type Option func(p *Parser)

// WithUserData sets the user data slot of a parser. The parser never
// inspects it.
func WithUserData(udata interface{}) Option {
	return func(p *Parser) {
		p.UData = udata
	}
}

// NewParser creates a parser for a table, reading tokens from src.
func NewParser(table *Table, src fsmparse.Tokenizer, opts ...Option) *Parser {
	p := &Parser{
		table: table,
		input: NewLookahead(src),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the state table of the parser.
func (p *Parser) Table() *Table {
	return p.table
}

// PeekToken returns the lookahead token without consuming it.
func (p *Parser) PeekToken() (fsmparse.Token, error) {
	return p.input.Peek()
}

// GetToken consumes the lookahead token.
func (p *Parser) GetToken() (fsmparse.Token, error) {
	return p.input.Get()
}

// UngetToken pushes tokens back into the lookahead, to be re-read in the
// given order.
func (p *Parser) UngetToken(toks ...fsmparse.Token) {
	p.input.Unget(toks...)
}

// Location returns the current source location of the input, if known.
func (p *Parser) Location() diag.Location {
	return p.input.Location()
}

// Errorf creates a location-tagged error, intended to be returned from
// action functions.
func (p *Parser) Errorf(format string, args ...interface{}) error {
	return diag.Errorf(p.Location(), nil, format, args...)
}

// Parse parses the input, starting with a named rule. If rule is empty, the
// table's default start state is used.
//
// The value returned by the action of the outermost rule is the result
// of the parse. Parse does not check for remaining input. After the outermost
// rule has been reduced the lookahead is left untouched, so the token source
// is not advanced beyond the last consumed token.
func (p *Parser) Parse(rule string) (interface{}, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.table == nil {
		return nil, fmt.Errorf("parser not initialized")
	}
	state, err := p.startState(rule)
	if err != nil {
		return nil, err
	}
	var values []interface{} // values accumulated by the current rule
	var stack frameStack
	token, err := p.input.Peek()
	if err != nil {
		return nil, err
	}
	for {
		tracer().Debugf("state %d, lookahead %v", state, token)
		action, exact, found := p.table.Lookup(state, token.Kind)
		if !found {
			return nil, &ParseError{
				State:    state,
				Expected: p.table.Expected(state),
				Found:    token,
				Loc:      p.input.Location(),
			}
		}
		tracer().Debugf("action(%d,%q) = %v", state, token.Kind, action)
		if action.IsCall() { // call sub-rule without consuming input
			stack.push(action.next, values)
			state, values = action.call, nil
			continue
		}
		next := action.next
		if exact && !token.IsEOF() {
			values = append(values, token)
			if _, err = p.input.Get(); err != nil {
				return nil, err
			}
			if token, err = p.input.Peek(); err != nil {
				return nil, err
			}
		}
		for next.IsAccept() { // reduce, possibly several rules in a row
			tracer().Debugf("reduce %v with %d values", next, len(values))
			result, err := next.Accept(p, values)
			if err != nil {
				return nil, err
			}
			if stack.isEmpty() {
				return result, nil
			}
			if token, err = p.input.Peek(); err != nil { // action may have changed the lookahead
				return nil, err
			}
			frame := stack.pop()
			values = frame.saved
			if result != nil {
				values = append(values, result)
			}
			next = frame.cont
		}
		state = next.State
	}
}

func (p *Parser) startState(rule string) (int, error) {
	if rule != "" {
		if s, ok := p.table.RuleState(rule); ok {
			return s, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, rule)
	}
	if s, ok := p.table.Start(); ok {
		return s, nil
	}
	return 0, ErrNoStart
}
