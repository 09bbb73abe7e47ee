/*
Package diag formats location-aware diagnostics for lexers and parsers.

A diagnostic renders as

    <file>(<line>) <Error|Warning> <msg>

where the file part is omitted if no display name is known and the line part
is omitted if the line number is 0. Errors are returned as *Diagnostic values,
warnings are handed to a WarningHandler and do not interrupt processing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"fmt"
	"strings"
)

// Severity discriminates fatal errors from warnings.
type Severity int8

// Severities of diagnostics.
const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// Location is a source position: a display name and a 1-based line number.
// Line 0 means "no line number".
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string {
	var b strings.Builder
	b.WriteString(loc.Name)
	if loc.Line > 0 {
		fmt.Fprintf(&b, "(%d)", loc.Line)
	}
	return b.String()
}

// Locator is implemented by token producers which know about the current
// source position.
type Locator interface {
	Location() Location
}

// Format renders a diagnostic line. The result always ends in a single
// newline.
func Format(sev Severity, loc Location, msg string) string {
	var b strings.Builder
	if prefix := loc.String(); prefix != "" {
		b.WriteString(prefix)
		b.WriteByte(' ')
	}
	b.WriteString(sev.String())
	if msg != "" {
		b.WriteByte(' ')
		b.WriteString(msg)
	}
	if !strings.HasSuffix(msg, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// Diagnostic is a message tied to a source location. It is used as an error
// type for fatal conditions.
type Diagnostic struct {
	Severity Severity
	Loc      Location
	Msg      string
	Err      error // underlying cause, may be nil
}

// New creates a diagnostic.
func New(sev Severity, loc Location, msg string) *Diagnostic {
	return &Diagnostic{Severity: sev, Loc: loc, Msg: msg}
}

// Errorf creates an error diagnostic wrapping cause.
func Errorf(loc Location, cause error, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Loc:      loc,
		Msg:      fmt.Sprintf(format, args...),
		Err:      cause,
	}
}

// String returns the formatted diagnostic line, including the newline.
func (d *Diagnostic) String() string {
	return Format(d.Severity, d.Loc, d.Msg)
}

// Error returns the formatted diagnostic without the trailing newline.
func (d *Diagnostic) Error() string {
	return strings.TrimSuffix(d.String(), "\n")
}

// Unwrap returns the underlying cause.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// WarningHandler receives non-fatal diagnostics.
type WarningHandler func(*Diagnostic)
