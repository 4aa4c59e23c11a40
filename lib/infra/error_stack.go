package infra

import (
	"fmt"
	"io"
	"runtime"
)

// References:
// https://github.com/pkg/errors/blob/master/errors.go

const maxStackDepth = 32

type stack []Frame

func callers(skip int) stack {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	st := make(stack, 0, n)
	for i := 0; i < n; i++ {
		st = append(st, Frame(pcs[i]))
	}
	return st
}

func (st stack) Format(s fmt.State, verb rune) {
	if verb != 'v' || !s.Flag('+') {
		return
	}
	for _, frame := range st {
		_, _ = io.WriteString(s, "\n")
		frame.Format(s, verb)
	}
}

// errorStack is an error carrying the call stack captured at creation
// (or wrap) time. The wrapped error stays reachable through Unwrap so
// that errors.Is and errors.As match sentinel values as usual.
type errorStack struct {
	err   error
	msg   string
	stack stack
}

func (e *errorStack) Error() string {
	if e.err == nil {
		return e.msg
	}
	if len(e.msg) == 0 {
		return e.err.Error()
	}
	return e.msg + ": " + e.err.Error()
}

func (e *errorStack) Unwrap() error {
	return e.err
}

// Format characters:
// %s, %v - the error message
// %+v - the error message followed by one frame per line
func (e *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, e.Error())
		if s.Flag('+') {
			e.stack.Format(s, verb)
		}
	case 's':
		_, _ = io.WriteString(s, e.Error())
	}
}

// NewErrorStack creates a brand-new error from a message and records
// the call stack of the creation site.
func NewErrorStack(msg string) error {
	return &errorStack{
		msg:   msg,
		stack: callers(3),
	}
}

// WrapErrorStack attaches the call stack of the wrap site to err.
// A nil err passes through as nil.
func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		err:   err,
		stack: callers(3),
	}
}

// WrapErrorStackWithMessage wraps err with an extra message and the
// call stack of the wrap site. A nil err with a non-empty message
// behaves as NewErrorStack.
func WrapErrorStackWithMessage(err error, msg string) error {
	if err == nil && len(msg) == 0 {
		return nil
	}
	return &errorStack{
		err:   err,
		msg:   msg,
		stack: callers(3),
	}
}
