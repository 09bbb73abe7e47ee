package lexer

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/fsmparse/diag"
)

// source is a single text producer together with its position. Sources are
// stacked for nested includes.
type source struct {
	name   string                    // display name, may be empty
	line   int                       // number of the current line
	next   int                       // number of the next line to read
	open   func() (io.Reader, error) // pending open of a file, nil after opening
	rd     *bufio.Reader             // nil until opened
	closer io.Closer                 // non-nil for files opened by the lexer
	key    string                    // canonical file identity, if a file
	scan   *lineScanner              // scanner for the current line
}

func newSource(name string, r io.Reader) *source {
	return &source{name: name, next: 1, rd: bufio.NewReader(r)}
}

// fileSource creates a source for a file. The file is opened on first read.
func fileSource(name string) *source {
	src := &source{name: name, next: 1, key: canonical(name)}
	src.open = func() (io.Reader, error) {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		src.closer = f
		return f, nil
	}
	return src
}

// linesSource creates a source from a list of lines. Lines lacking a line
// break are terminated by "\n".
func linesSource(name string, lines []string) *source {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		if !strings.HasSuffix(l, "\n") && !strings.HasSuffix(l, "\r") && !strings.HasSuffix(l, "\f") {
			b.WriteByte('\n')
		}
	}
	return newSource(name, strings.NewReader(b.String()))
}

// Location returns the display name and number of the current line.
func (src *source) Location() diag.Location {
	return diag.Location{Name: src.name, Line: src.line}
}

// nextLine reads the next line of input and prepares a scanner for it.
// It returns false if the source is exhausted.
func (src *source) nextLine() (bool, error) {
	if src.rd == nil {
		r, err := src.open()
		if err != nil {
			return false, err
		}
		src.rd, src.open = bufio.NewReader(r), nil
	}
	text, ok, err := readLine(src.rd)
	if err != nil || !ok {
		return false, err
	}
	src.line = src.next
	src.next++
	if src.scan, err = newLineScanner(text); err != nil {
		return false, err
	}
	tracer().Debugf("%s: %q", src.Location(), text)
	return true, nil
}

// close releases a file held by the source.
func (src *source) close() error {
	src.scan = nil
	if src.closer == nil {
		return nil
	}
	err := src.closer.Close()
	src.closer = nil
	return err
}

// readLine reads a line terminated by "\n", "\r", "\r\n" or "\f". The line
// break is not part of the result. ok is false if no input is left.
func readLine(rd *bufio.Reader) (line string, ok bool, err error) {
	var b strings.Builder
	for {
		r, _, err := rd.ReadRune()
		if err == io.EOF {
			return b.String(), b.Len() > 0, nil
		} else if err != nil {
			return "", false, err
		}
		switch r {
		case '\n', '\f':
			return b.String(), true, nil
		case '\r':
			if r, _, err := rd.ReadRune(); err == nil && r != '\n' {
				rd.UnreadRune()
			}
			return b.String(), true, nil
		}
		b.WriteRune(r)
	}
}

// --- Pull sources ----------------------------------------------------------

// chunkReader adapts a pull-style callback to io.Reader. Chunks need not
// align with lines.
type chunkReader struct {
	pull  func() (string, bool)
	chunk string
	done  bool
}

func (cr *chunkReader) Read(p []byte) (int, error) {
	for cr.chunk == "" {
		if cr.done {
			return 0, io.EOF
		}
		chunk, ok := cr.pull()
		if !ok {
			cr.done = true
		}
		cr.chunk = chunk
	}
	n := copy(p, cr.chunk)
	cr.chunk = cr.chunk[n:]
	return n, nil
}
