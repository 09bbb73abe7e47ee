/*
Package lexer implements a streaming lexer and preprocessor.

A lexer reads from a stack of sources: files, strings, line lists, readers
or pull-style callbacks. Text is split into lines at "\n", "\r", "\r\n" and
"\f", and every line is scanned by a DFA compiled with lexmachine. Tokens
are fsmparse.Token values of kind

    NUM     numeric literal in hex (0x), binary (0b), octal (leading 0)
            or decimal notation; the text is the decimal value
    STR     single or double quoted string; the text is the unescaped content
    NAME    identifier
    op      operators and punctuation, kind equals text: << >> == != ...
    c       any other single character c, kind equals text

Lines starting with '#' (after optional white space) are preprocessor lines:

    #include "file"   (or 'file', <file>, file)
    #line 42 "file"   (the following line is line 42 of "file")
    # anything else is a comment

Included files are searched for along a search path. Including a file which
is already open is an error.

Usage

    lx, err := lexer.New(lexer.WithSearchPath("include", "/usr/share/asm"))
    lx.FromFile("main.asm")
    for {
        tok, err := lx.NextToken()
        if err != nil || tok.IsEOF() {
            break
        }
        ...
    }

Lexer implements fsmparse.Tokenizer and diag.Locator and may be used as the
token source of an fsm.Parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsmparse.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("fsmparse.lexer")
}
