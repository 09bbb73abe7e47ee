package lexer

import "github.com/npillmayer/fsmparse/diag"

// Option configures a lexer.
type Option func(lx *Lexer)

// WithSearchPath sets the directories to look for included files, in order
// of precedence.
func WithSearchPath(dirs ...string) Option {
	return func(lx *Lexer) {
		lx.path = append(lx.path, dirs...)
	}
}

// OnWarning sets a handler for non-fatal diagnostics. By default warnings
// are traced.
func OnWarning(h diag.WarningHandler) Option {
	return func(lx *Lexer) {
		if h == nil {
			lx.warn = traceWarning
			return
		}
		lx.warn = h
	}
}

// WarnUnknownDirectives controls whether a line starting with '#' which is
// neither #include nor #line results in a warning. If not set, such lines are
// silently treated as comments.
func WarnUnknownDirectives(b bool) Option {
	return func(lx *Lexer) {
		lx.warnUnknown = b
	}
}

// Default handler for warnings.
func traceWarning(d *diag.Diagnostic) {
	tracer().Infof("%s", d.Error())
}
