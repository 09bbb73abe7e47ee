package fsm

import "fmt"

// ActionFunc reduces the values accumulated by a rule to a single value.
// A nil result contributes nothing to the calling rule. Action functions
// may call back into the parser to inspect or modify the lookahead.
type ActionFunc func(p *Parser, values []interface{}) (interface{}, error)

// Target is where control continues after an action: either a state or an
// accept, i.e. the reduction of the current rule.
type Target struct {
	State  int        // next state, if Accept is nil
	Accept ActionFunc // rule action
	Name   string     // name of the rule action, for diagnostics
}

// IsAccept is a predicate: does this target reduce the current rule?
func (t Target) IsAccept() bool {
	return t.Accept != nil
}

func (t Target) String() string {
	if t.IsAccept() {
		if t.Name != "" {
			return fmt.Sprintf("accept(%s)", t.Name)
		}
		return "accept"
	}
	return fmt.Sprintf("%d", t.State)
}

// ActionKind discriminates the variants of Action.
type ActionKind int8

// Kinds of actions.
const (
	ShiftAction ActionKind = iota
	AcceptAction
	CallThenShiftAction
	CallThenAcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case AcceptAction:
		return "accept"
	case CallThenShiftAction:
		return "call/shift"
	case CallThenAcceptAction:
		return "call/accept"
	}
	return "<unknown>"
}

// Action is an entry of a state table. Create actions with Shift, Accept,
// CallThenShift or CallThenAccept.
type Action struct {
	call   int    // callee start state
	isCall bool   // call is valid
	next   Target // continuation
}

// Shift consumes the matched token and continues with state next.
func Shift(next int) Action {
	return Action{next: Target{State: next}}
}

// Accept consumes the matched token and reduces the current rule.
func Accept(fn ActionFunc) Action {
	return AcceptNamed("", fn)
}

// AcceptNamed is like Accept, with a name for the action function.
func AcceptNamed(name string, fn ActionFunc) Action {
	if fn == nil {
		fn = none
	}
	return Action{next: Target{Accept: fn, Name: name}}
}

// CallThenShift calls the sub-rule starting at callee. After the sub-rule is
// reduced, parsing resumes at state ret.
func CallThenShift(callee, ret int) Action {
	return Action{call: callee, isCall: true, next: Target{State: ret}}
}

// CallThenAccept calls the sub-rule starting at callee and then reduces the
// current rule.
func CallThenAccept(callee int, fn ActionFunc) Action {
	return CallThenAcceptNamed(callee, "", fn)
}

// CallThenAcceptNamed is like CallThenAccept, with a name for the action
// function.
func CallThenAcceptNamed(callee int, name string, fn ActionFunc) Action {
	a := AcceptNamed(name, fn)
	a.call, a.isCall = callee, true
	return a
}

// Kind returns the variant of an action.
func (a Action) Kind() ActionKind {
	switch {
	case a.IsCall() && a.next.IsAccept():
		return CallThenAcceptAction
	case a.IsCall():
		return CallThenShiftAction
	case a.next.IsAccept():
		return AcceptAction
	}
	return ShiftAction
}

// IsCall is a predicate: does this action call a sub-rule?
func (a Action) IsCall() bool {
	return a.isCall
}

// Callee returns the start state of the called sub-rule, or -1.
func (a Action) Callee() int {
	if !a.isCall {
		return -1
	}
	return a.call
}

// Next returns the continuation of an action.
func (a Action) Next() Target {
	return a.next
}

func (a Action) String() string {
	if a.IsCall() {
		return fmt.Sprintf("<call %d then %s>", a.call, a.next)
	}
	if a.next.IsAccept() {
		return fmt.Sprintf("<%s>", a.next)
	}
	return fmt.Sprintf("<shift %d>", a.next.State)
}
