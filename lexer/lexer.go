package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/fsmparse/diag"
)

// Lexer is a streaming lexer over a stack of sources. Create one with
// lexer.New(...) and add input with FromFile, FromString etc. Sources added
// are read one after the other, in order. A lexer is not safe for
// concurrent use; independent lexers may be used concurrently.
type Lexer struct {
	sources     *arraystack.Stack // active sources; top is current
	pending     *arraylist.List   // sources not yet started
	open        *hashset.Set      // canonical names of files on the source stack
	path        SearchPath
	warn        diag.WarningHandler
	warnUnknown bool
	last        diag.Location // location of the most recently exhausted source
}

var _ fsmparse.Tokenizer = (*Lexer)(nil)
var _ diag.Locator = (*Lexer)(nil)

// New creates a lexer without any input.
func New(opts ...Option) (*Lexer, error) {
	if _, err := lineLexer(); err != nil {
		return nil, err
	}
	lx := &Lexer{
		sources: arraystack.New(),
		pending: arraylist.New(),
		open:    hashset.New(),
		warn:    traceWarning,
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx, nil
}

// --- Input -----------------------------------------------------------------

// FromFile adds files to read. Files are opened when the lexer reaches them.
func (lx *Lexer) FromFile(paths ...string) {
	for _, path := range paths {
		lx.pending.Add(fileSource(path))
	}
}

// FromString adds an in-memory text. name is used in diagnostics and may be
// empty.
func (lx *Lexer) FromString(name, text string) {
	lx.pending.Add(newSource(name, strings.NewReader(text)))
}

// FromLines adds a list of lines.
func (lx *Lexer) FromLines(name string, lines []string) {
	lx.pending.Add(linesSource(name, lines))
}

// FromReader adds text from a reader. The lexer will not close r.
func (lx *Lexer) FromReader(name string, r io.Reader) {
	lx.pending.Add(newSource(name, r))
}

// FromFunc adds a pull-style source. pull is called for the next chunk of
// text until it returns false. Chunks need not be complete lines.
func (lx *Lexer) FromFunc(name string, pull func() (string, bool)) {
	lx.pending.Add(newSource(name, &chunkReader{pull: pull}))
}

// --- Tokens ----------------------------------------------------------------

// NextToken returns the next token of the input, or fsmparse.EOF if all
// sources are exhausted. Errors are fatal.
//
// NextToken is part of the fsmparse.Tokenizer interface.
func (lx *Lexer) NextToken() (fsmparse.Token, error) {
	for {
		src := lx.current()
		if src == nil {
			return fsmparse.EOF, nil
		}
		if src.scan == nil {
			ok, err := src.nextLine()
			if err != nil {
				return fsmparse.EOF, lx.sourceError(src, err)
			}
			if !ok {
				lx.pop()
				continue
			}
		}
		first := src.scan.first()
		typ, lexeme, ok, err := src.scan.next()
		if err != nil {
			return fsmparse.EOF, lx.Errorf("%v", err)
		}
		if !ok {
			src.scan = nil
			continue
		}
		switch typ {
		case tokDirective:
			if !first { // trailing comment
				continue
			}
			if err := lx.directive(src, lexeme); err != nil {
				return fsmparse.EOF, err
			}
			continue
		case tokNum:
			text, err := decodeNumber(lexeme)
			if err != nil {
				return fsmparse.EOF, lx.Errorf("%v", err)
			}
			return fsmparse.MakeToken("NUM", text), nil
		case tokString:
			return fsmparse.MakeToken("STR", unquote(lexeme)), nil
		case tokName:
			return fsmparse.MakeToken("NAME", lexeme), nil
		}
		return fsmparse.MakeToken(lexeme, lexeme), nil
	}
}

// directive executes a preprocessor line.
func (lx *Lexer) directive(src *source, text string) error {
	d, err := parseDirective(text)
	if err != nil {
		return diag.Errorf(src.Location(), ErrMalformedDirective, "%v", err)
	}
	switch d.kind {
	case dirInclude:
		return lx.include(src, d.name)
	case dirLine:
		src.line, src.next = d.line, d.line
		if d.name != "" {
			src.name = d.name
		}
		tracer().Debugf("#line: next line is %s", diag.Location{Name: src.name, Line: src.next})
	default:
		if lx.warnUnknown && d.keyword != "" {
			lx.Warnf("unknown directive #%s", d.keyword)
		}
	}
	return nil
}

// include pushes a file onto the source stack.
func (lx *Lexer) include(src *source, name string) error {
	path := lx.path.Resolve(name)
	inc := fileSource(path)
	if lx.open.Contains(inc.key) {
		return diag.Errorf(src.Location(), ErrIncludeLoop,
			"include loop: %s is already open", path)
	}
	tracer().Debugf("%s: #include %s", src.Location(), path)
	lx.push(inc)
	return nil
}

func (lx *Lexer) sourceError(src *source, err error) error {
	loc := src.Location()
	cause := err
	if src.rd == nil { // failed to open
		loc, cause = diag.Location{Name: src.name}, ErrSourceOpen
	}
	lx.pop()
	return diag.Errorf(loc, cause, "%v", err)
}

// --- Source stack ----------------------------------------------------------

// current returns the source on top of the stack. If the stack is empty, the
// next pending source is started.
func (lx *Lexer) current() *source {
	if lx.sources.Empty() {
		src, ok := lx.pending.Get(0)
		if !ok {
			return nil
		}
		lx.pending.Remove(0)
		lx.push(src.(*source))
	}
	top, _ := lx.sources.Peek()
	return top.(*source)
}

func (lx *Lexer) push(src *source) {
	lx.sources.Push(src)
	if src.key != "" {
		lx.open.Add(src.key)
	}
}

func (lx *Lexer) pop() error {
	top, ok := lx.sources.Pop()
	if !ok {
		return nil
	}
	src := top.(*source)
	if src.key != "" {
		lx.open.Remove(src.key)
	}
	lx.last = src.Location()
	tracer().Debugf("end of source %q, depth = %d", src.name, lx.sources.Size())
	err := src.close()
	if err != nil {
		tracer().Errorf("closing %s: %v", src.name, err)
	}
	return err
}

// Depth returns the number of active sources, i.e., 1 + the nesting depth of
// includes, or 0 if no source is active.
func (lx *Lexer) Depth() int {
	return lx.sources.Size()
}

// Close releases all open files. Sources not yet started are discarded.
func (lx *Lexer) Close() error {
	var err error
	for !lx.sources.Empty() {
		if e := lx.pop(); e != nil && err == nil {
			err = e
		}
	}
	lx.pending.Clear()
	return err
}

// --- Diagnostics -----------------------------------------------------------

// Location returns the current source location. After all sources are
// exhausted, it is the location of the end of the last source.
//
// Location is part of the diag.Locator interface.
func (lx *Lexer) Location() diag.Location {
	if top, ok := lx.sources.Peek(); ok {
		return top.(*source).Location()
	}
	return lx.last
}

// Errorf creates a fatal diagnostic at the current location.
func (lx *Lexer) Errorf(format string, args ...interface{}) error {
	return diag.Errorf(lx.Location(), nil, format, args...)
}

// Warnf reports a non-fatal diagnostic at the current location.
func (lx *Lexer) Warnf(format string, args ...interface{}) {
	d := diag.New(diag.Warning, lx.Location(), fmt.Sprintf(format, args...))
	lx.warn(d)
}
