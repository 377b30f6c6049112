// frame.go — attached frames and typed access to their contexts.
//
// Overview
//   A Frame is one (span, context) pair recorded when a failure crossed an
//   Attach boundary. The helpers here recover concrete context types from
//   frames without the caller writing type switches over AsAny.
//
// Usage
//   pe, _ := err.(*parsectx.Error)
//   if ec, fr, ok := parsectx.FindContext[parsectx.ExpectedContext](pe); ok {
//       fmt.Println(ec.Want, fr.Span)
//   }
//
// Caveats
//   • Lookup uses Go type assertions on AsAny: the stored dynamic type must be
//     T exactly, no conversions.
package parsectx

import (
	"fmt"
	"reflect"
)

// Frame is one recorded attachment.
type Frame struct {
	Span    Span
	Context Context
}

// Operation renders the frame's operation text.
func (f Frame) Operation() (string, error) {
	if f.Context == nil {
		return "", ErrFormat
	}
	return OperationString(f.Context)
}

// HasExpected reports whether the frame's context has an expected value.
func (f Frame) HasExpected() bool {
	return f.Context != nil && f.Context.HasExpected()
}

// Expected renders the frame's expected text. Call HasExpected first; a frame
// without one returns ErrNoExpected.
func (f Frame) Expected() (string, error) {
	if f.Context == nil {
		return "", ErrNoExpected
	}
	return ExpectedString(f.Context)
}

// FrameAs recovers the concrete context type of f.
func FrameAs[T any](f Frame) (T, bool) {
	return ContextAs[T](f.Context)
}

// FindContext returns the newest frame of e whose context has type T.
func FindContext[T any](e *Error) (T, Frame, bool) {
	var zero T
	if e == nil {
		return zero, Frame{}, false
	}
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := FrameAs[T](e.frames[i]); ok {
			return v, e.frames[i], true
		}
	}
	return zero, Frame{}, false
}

// MustFindContext is FindContext that panics when no frame matches. Intended
// for tests, where a missing frame is a bug in the parser under test.
func MustFindContext[T any](e *Error) T {
	v, _, ok := FindContext[T](e)
	if !ok {
		panic(fmt.Sprintf("parsectx.MustFindContext: no frame with context type %s", reflect.TypeFor[T]()))
	}
	return v
}
