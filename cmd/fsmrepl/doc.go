/*
Package fsmrepl/main provides an interactive command line tool (FSMREPL)
to experiment with the lexer and with externally generated state tables.

Without a state table, every line entered is tokenized and the tokens are
printed together with their source locations. With a state table (flag
-table, in JSON format), every line is parsed and the parse result is
printed as a tree. Input files given as arguments are processed in batch
mode.

    fsmrepl -I include,/usr/share/asm -table expr.json -rule E

Accept actions of a table are resolved against the builtin actions list,
first, last, none and text, plus an action "number" which converts a NUM
token to an integer.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsmparse.repl'
func tracer() tracing.Trace {
	return tracing.Select("fsmparse.repl")
}
