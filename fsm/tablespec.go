package fsm

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cnf/structhash"
)

// TableSpec is the external form of a state table, as emitted by a grammar
// compiler. It is read from JSON:
//
//    {
//      "start": "E",
//      "rules": { "E": 1, "T": 4 },
//      "states": [
//        {},
//        { "NUM": { "call": 4, "shift": 2 } },
//        { "+": { "shift": 3 }, "<any>": { "accept": "first" } },
//        { "NUM": { "call": 4, "accept": "sum" } },
//        { "NUM": { "accept": "number" } }
//      ]
//    }
//
// Every action has either a "shift" or an "accept" member, and optionally a
// "call" member. Key "<any>" is the wildcard, key "" denotes end of input.
// Accept actions name action functions, which are resolved by a Registry.
type TableSpec struct {
	Start  string                  `json:"start,omitempty"`
	Rules  map[string]int          `json:"rules"`
	States []map[string]ActionSpec `json:"states"`
}

// ActionSpec is the external form of an Action.
type ActionSpec struct {
	Call   *int   `json:"call,omitempty"`
	Shift  *int   `json:"shift,omitempty"`
	Accept string `json:"accept,omitempty"`
}

// ReadTableSpec decodes a table description in JSON format.
func ReadTableSpec(r io.Reader) (*TableSpec, error) {
	spec := &TableSpec{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(spec); err != nil {
		return nil, fmt.Errorf("cannot decode state table: %w", err)
	}
	return spec, nil
}

// Fingerprint returns a hash over the content of a table description.
// Equal descriptions have equal fingerprints.
func (spec *TableSpec) Fingerprint() (string, error) {
	return structhash.Hash(spec, 1)
}

// Build creates a state table from a description, resolving accept actions
// through reg.
func (spec *TableSpec) Build(reg Registry) (*Table, error) {
	b := NewTableBuilder()
	for range spec.States {
		b.State()
	}
	for s, state := range spec.States {
		keys := make([]string, 0, len(state))
		for k := range state {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			a, err := state[key].action(reg)
			if err != nil {
				return nil, fmt.Errorf("state %d, key %q: %w", s, key, err)
			}
			b.On(s, key, a)
		}
	}
	for name, s := range spec.Rules {
		b.Rule(name, s)
	}
	if spec.Start != "" {
		s, ok := spec.Rules[spec.Start]
		if !ok {
			return nil, fmt.Errorf("%w: start rule %q", ErrUnknownRule, spec.Start)
		}
		b.Start(s)
	}
	return b.Table()
}

func (as ActionSpec) action(reg Registry) (Action, error) {
	if (as.Shift == nil) == (as.Accept == "") {
		return Action{}, fmt.Errorf("action must either shift or accept")
	}
	var fn ActionFunc
	if as.Accept != "" {
		var ok bool
		if fn, ok = reg[as.Accept]; !ok || fn == nil {
			return Action{}, fmt.Errorf("unknown action function %q", as.Accept)
		}
	}
	if as.Call != nil && *as.Call < 0 {
		return Action{}, fmt.Errorf("%w: call to state %d", ErrInvalidState, *as.Call)
	}
	switch {
	case as.Call != nil && as.Accept != "":
		return CallThenAcceptNamed(*as.Call, as.Accept, fn), nil
	case as.Call != nil:
		return CallThenShift(*as.Call, *as.Shift), nil
	case as.Accept != "":
		return AcceptNamed(as.Accept, fn), nil
	}
	return Shift(*as.Shift), nil
}
