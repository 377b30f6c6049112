// attach.go — runs a parsing step and records context if it fails.
//
// Attach is the hot path: it wraps every nested parser call, so on success it
// does nothing beyond calling f. Only a failing step touches the input or the
// context, and then exactly once.
package parsectx

import "errors"

// WithContext is implemented by error types that accumulate frames.
//
// WithContext(input, ctx) records one frame and returns the enriched error.
// How frames are stored, capped or ordered is up to the implementation; each
// call should record a new frame. The zero value of E must mean "no error".
type WithContext[E any] interface {
	comparable
	error
	WithContext(input Input, ctx Context) E
}

// Attach runs f. On success it returns f's value untouched. On failure it
// returns the zero T and err.WithContext(input, ctx).
//
// Attach does not look at frames already present in the error; nesting
// Attach calls records the innermost frame first.
//
//	n, err := parsectx.Attach(in, parsectx.OperationContext("parse number"), func() (int, *parsectx.Error) {
//	    return parseDigits(in)
//	})
func Attach[T any, E WithContext[E]](input Input, ctx Context, f func() (T, E)) (T, E) {
	v, err := f()
	var none E
	if err == none {
		return v, err
	}
	var zero T
	return zero, err.WithContext(input, ctx)
}

// Wrap attaches ctx to any error, for code that returns plain error values.
//   - nil → nil
//   - a *Error in the chain → that *Error enriched with one frame
//   - anything else → adopted as CodeForeign at input, then enriched
//
// The result is nil or a *Error.
func Wrap(input Input, ctx Context, err error) error {
	if err == nil {
		return nil
	}
	return From(input, err).WithContext(input, ctx)
}

func asError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}
