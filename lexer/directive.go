package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedDirective flags an #include without a file name or a #line
// without a line number.
var ErrMalformedDirective = errors.New("malformed directive")

// ErrIncludeLoop flags the inclusion of a file which is already open.
var ErrIncludeLoop = errors.New("include loop")

// ErrSourceOpen flags a source file which could not be opened.
var ErrSourceOpen = errors.New("cannot open source")

type directiveKind int8

const (
	dirComment directiveKind = iota
	dirInclude
	dirLine
)

// directive is a parsed preprocessor line.
type directive struct {
	kind    directiveKind
	keyword string // first word after '#', may be empty
	name    string // file name of #include and #line
	line    int    // line number of #line
}

// parseDirective parses a line starting with '#'. Anything not recognized
// as #include or #line is a comment.
func parseDirective(text string) (directive, error) {
	body := strings.TrimLeft(strings.TrimPrefix(text, "#"), " \t")
	end := strings.IndexFunc(body, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if end < 0 {
		end = len(body)
	}
	d := directive{keyword: body[:end]}
	args := strings.TrimSpace(body[end:])
	switch d.keyword {
	case "include":
		d.kind = dirInclude
		name, ok := fileName(args)
		if !ok {
			return d, errors.New("#include without file name")
		}
		d.name = name
	case "line":
		d.kind = dirLine
		fields := strings.Fields(args)
		if len(fields) == 0 {
			return d, errors.New("#line without line number")
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return d, errors.New("#line with invalid line number " + strconv.Quote(fields[0]))
		}
		d.line = n
		if rest := strings.TrimSpace(args[len(fields[0]):]); rest != "" {
			if d.name, _ = fileName(rest); d.name == "" {
				return d, errors.New("#line with invalid file name")
			}
		}
	}
	return d, nil
}

// fileName extracts a file name given as "name", 'name', <name> or as a
// bare word.
func fileName(arg string) (string, bool) {
	if arg == "" {
		return "", false
	}
	var closing byte
	switch arg[0] {
	case '"', '\'':
		closing = arg[0]
	case '<':
		closing = '>'
	default:
		return strings.Fields(arg)[0], true
	}
	end := strings.IndexByte(arg[1:], closing)
	if end <= 0 {
		return "", false
	}
	return arg[1 : 1+end], true
}
