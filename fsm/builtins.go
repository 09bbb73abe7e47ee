package fsm

import (
	"strings"

	"github.com/npillmayer/fsmparse"
)

// Registry binds names to action functions. It is used to resolve the
// accept actions of externally generated tables.
type Registry map[string]ActionFunc

// Builtins returns a registry pre-loaded with generic actions:
//
//    list    the accumulated values as a []interface{}
//    first   the first value, if any
//    last    the last value, if any
//    none    no value
//    text    the concatenated texts of all tokens among the values
//
func Builtins() Registry {
	return Registry{
		"list":  list,
		"first": first,
		"last":  last,
		"none":  none,
		"text":  text,
	}
}

// With returns a copy of r, extended by the entries of other. Entries of
// other win.
func (r Registry) With(other Registry) Registry {
	reg := make(Registry, len(r)+len(other))
	for k, v := range r {
		reg[k] = v
	}
	for k, v := range other {
		reg[k] = v
	}
	return reg
}

func list(p *Parser, values []interface{}) (interface{}, error) {
	l := make([]interface{}, len(values))
	copy(l, values)
	return l, nil
}

func first(p *Parser, values []interface{}) (interface{}, error) {
	if len(values) == 0 {
		return nil, nil
	}
	return values[0], nil
}

func last(p *Parser, values []interface{}) (interface{}, error) {
	if len(values) == 0 {
		return nil, nil
	}
	return values[len(values)-1], nil
}

func none(p *Parser, values []interface{}) (interface{}, error) {
	return nil, nil
}

func text(p *Parser, values []interface{}) (interface{}, error) {
	var b strings.Builder
	for _, v := range values {
		if tok, ok := v.(fsmparse.Token); ok {
			b.WriteString(tok.Text)
		}
	}
	return b.String(), nil
}
