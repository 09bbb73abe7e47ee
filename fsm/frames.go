package fsm

// This module implements the stack of return frames of the parser.
// A frame is pushed for every sub-rule call and popped on every accept.

// returnFrame holds the continuation of a calling rule together with the
// values the caller has accumulated so far.
type returnFrame struct {
	cont   Target
	saved  []interface{}
	parent *returnFrame
}

// frameStack is a (call-)stack of return frames.
type frameStack struct {
	tos   *returnFrame
	depth int
}

// push pushes a new frame as TOS.
func (fs *frameStack) push(cont Target, saved []interface{}) {
	fs.tos = &returnFrame{cont: cont, saved: saved, parent: fs.tos}
	fs.depth++
	tracer().Debugf("push return frame, depth = %d, continue at %v", fs.depth, cont)
}

// pop pops the top-most frame. Returns the popped frame.
func (fs *frameStack) pop() *returnFrame {
	if fs.tos == nil {
		panic("attempt to pop return frame from empty call stack")
	}
	f := fs.tos
	fs.tos = f.parent
	fs.depth--
	tracer().Debugf("pop return frame, depth = %d", fs.depth)
	return f
}

func (fs *frameStack) isEmpty() bool {
	return fs.tos == nil
}
