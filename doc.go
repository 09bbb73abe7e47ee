/*
Package fsmparse is the run-time half of a table-driven parser toolkit.

An offline grammar compiler emits a finite-state-machine table for a grammar.
This module drives a deterministic top-down parse of a token stream over such
a table and supplies the token stream from source files or in-memory input,
handling nested #include files, #line remapping, comments, quoted strings and
numeric literals in four bases. Package structure is as follows:

■ fsm: Package fsm implements the state table, the parsing engine with its
explicit call/return stack, and a lookahead buffer between lexer and engine.

■ lexer: Package lexer implements a streaming lexer/preprocessor over a stack
of source contexts.

■ diag: Package diag formats location-aware diagnostics.

■ cmd/fsmrepl: An interactive tool to tokenize input or parse it with a state
table loaded from JSON.

The base package contains the token type which flows from the lexer to the
engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsmparse
