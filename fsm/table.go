package fsm

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fsmparse/fsm/sparse"
)

// Wildcard is the reserved dispatch key matching any token (including end
// of input) for which a state has no explicit entry.
const Wildcard = "<any>"

// EOFKey is the dispatch key for end of input.
const EOFKey = ""

// wildcardColumn is the dispatch matrix column of the wildcard key.
const wildcardColumn = 0

// Table is an FSM state table. Tables are immutable after construction and
// may be shared between parsers.
type Table struct {
	dispatch *sparse.IntMatrix // (state, key column) -> index into actions
	actions  []Action
	columns  map[string]int // dispatch key -> column
	keys     []string       // column -> dispatch key
	states   int            // number of states
	rules    map[string]int // rule name -> start state
	start    int            // default start state, or -1
}

func newTable() *Table {
	return &Table{
		dispatch: sparse.NewIntMatrix(sparse.DefaultNullValue),
		columns:  map[string]int{Wildcard: wildcardColumn},
		keys:     []string{Wildcard},
		rules:    make(map[string]int),
		start:    -1,
	}
}

// StateCount returns the number of states of the table.
func (t *Table) StateCount() int {
	return t.states
}

// RuleState returns the start state of a named rule.
func (t *Table) RuleState(rule string) (int, bool) {
	s, ok := t.rules[rule]
	return s, ok
}

// Rules calls f for every named rule, in no particular order.
func (t *Table) Rules(f func(rule string, state int)) {
	for r, s := range t.rules {
		f(r, s)
	}
}

// Start returns the default start state, if one is configured.
func (t *Table) Start() (int, bool) {
	return t.start, t.start >= 0
}

// Lookup finds the action for a dispatch key in a state. An entry for key
// wins over the wildcard entry. Lookup reports whether an entry was found
// and whether it matched key exactly.
func (t *Table) Lookup(state int, key string) (a Action, exact bool, found bool) {
	if col, ok := t.columns[key]; ok && col != wildcardColumn {
		if inx := t.dispatch.Value(state, col); inx != t.dispatch.NullValue() {
			return t.actions[inx], true, true
		}
	}
	if inx := t.dispatch.Value(state, wildcardColumn); inx != t.dispatch.NullValue() {
		return t.actions[inx], false, true
	}
	return Action{}, false, false
}

// Expected returns the sorted set of explicit dispatch keys of a state. The
// wildcard key is not included.
func (t *Table) Expected(state int) []string {
	set := treeset.NewWithStringComparator()
	t.dispatch.Row(state, func(col int, _ int32) {
		if col != wildcardColumn {
			set.Add(t.keys[col])
		}
	})
	expected := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		expected = append(expected, k.(string))
	}
	return expected
}

// EachEntry calls f for every entry of a state, including a wildcard entry.
func (t *Table) EachEntry(state int, f func(key string, a Action)) {
	t.dispatch.Row(state, func(col int, inx int32) {
		f(t.keys[col], t.actions[inx])
	})
}

func (t *Table) column(key string) int {
	if col, ok := t.columns[key]; ok {
		return col
	}
	col := len(t.keys)
	t.columns[key] = col
	t.keys = append(t.keys, key)
	return col
}

// --- Table builder ---------------------------------------------------------

// ErrConflict is returned by TableBuilder.Table if a state has more than one
// entry for a dispatch key.
var ErrConflict = errors.New("conflicting table entries")

// ErrInvalidState is returned by TableBuilder.Table if an action or a rule
// refers to a state outside of the table.
var ErrInvalidState = errors.New("reference to undefined state")

// TableBuilder assembles a state table. Errors are collected and reported by
// Table().
type TableBuilder struct {
	t    *Table
	errs []error
}

// NewTableBuilder creates a builder for an empty table.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{t: newTable()}
}

// State allocates a new, empty state and returns its index.
func (b *TableBuilder) State() int {
	b.t.states++
	return b.t.states - 1
}

// On sets the action for key in state.
func (b *TableBuilder) On(state int, key string, a Action) *TableBuilder {
	if state < 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: %d", ErrInvalidState, state))
		return b
	}
	if state >= b.t.states {
		b.t.states = state + 1
	}
	col := b.t.column(key)
	if inx := b.t.dispatch.Value(state, col); inx != b.t.dispatch.NullValue() {
		b.errs = append(b.errs, fmt.Errorf("%w: state %d, key %q: %v and %v",
			ErrConflict, state, key, b.t.actions[inx], a))
		return b
	}
	b.t.dispatch.Set(state, col, int32(len(b.t.actions)))
	b.t.actions = append(b.t.actions, a)
	return b
}

// Otherwise sets the wildcard action of a state.
func (b *TableBuilder) Otherwise(state int, a Action) *TableBuilder {
	return b.On(state, Wildcard, a)
}

// Rule binds a rule name to its start state.
func (b *TableBuilder) Rule(name string, state int) *TableBuilder {
	b.t.rules[name] = state
	return b
}

// Start sets the default start state.
func (b *TableBuilder) Start(state int) *TableBuilder {
	b.t.start = state
	return b
}

// Table returns the assembled table, or the first error encountered while
// building it.
func (b *TableBuilder) Table() (*Table, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	t := b.t
	check := func(s int, what string) error {
		if s < 0 || s >= t.states {
			return fmt.Errorf("%w: %s refers to state %d", ErrInvalidState, what, s)
		}
		return nil
	}
	for s := 0; s < t.states; s++ {
		var err error
		t.dispatch.Row(s, func(col int, inx int32) {
			a := t.actions[inx]
			what := fmt.Sprintf("entry (%d,%q)", s, t.keys[col])
			if err == nil && a.IsCall() {
				err = check(a.call, what)
			}
			if err == nil && !a.next.IsAccept() {
				err = check(a.next.State, what)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	for name, s := range t.rules {
		if err := check(s, fmt.Sprintf("rule %q", name)); err != nil {
			return nil, err
		}
	}
	if t.start >= 0 {
		if err := check(t.start, "start"); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("table with %d states and %d entries", t.states, len(t.actions))
	return t, nil
}
