/*
Package fsm provides a table-driven, deterministic top-down parser. An offline
grammar compiler prepares a state table; the parser in this package interprets
it over a token stream, provided through the fsmparse.Tokenizer interface.

State Tables

A table is a sequence of states. Every state maps dispatch keys (token kinds)
to actions:

	Shift(n)              consume the token and continue in state n
	Accept(fn)            consume the token and reduce the current rule with fn
	CallThenShift(c, r)   call the sub-rule starting at state c, then resume at r
	CallThenAccept(c, fn) call the sub-rule at c, then reduce the current rule with fn

The reserved key Wildcard matches whatever no other entry of a state matches.
A wildcard match does not consume input. End of input is looked up with key "".
Rule names map to start states, which callers use to select an entry point.

Tables are assembled with a TableBuilder

	b := fsm.NewTableBuilder()
	T := b.State()                                  // T  -> NUM
	b.On(T, "NUM", fsm.Accept(number))
	b.Rule("T", T).Start(T)
	table, err := b.Table()

or read from the JSON format produced by a grammar compiler (see TableSpec).

Parsing

	p := fsm.NewParser(table, tokenizer)
	value, err := p.Parse("")  // "" selects the table's default start rule

The parser keeps an explicit stack of return frames. Grammar nesting depth is
therefore bounded by available memory, not by the Go call stack. Every rule
accumulates the tokens it consumed and the values of sub-rules it called.
When a rule is reduced, its action function receives these values and returns
a single value for the calling rule (or nil to contribute nothing).
Action functions may inspect and manipulate the lookahead through the parser.

Parsing errors are not recovered. The first state without an entry for the
lookahead token terminates the parse with a *ParseError.

Tables are read-only after construction and may be shared between parsers
running in different goroutines. A single parser is not safe for concurrent
use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsmparse.fsm'.
func tracer() tracing.Trace {
	return tracing.Select("fsmparse.fsm")
}
