// construct.go — constructors and options for *Error.
//
// Every constructor records the span of the input it is given as the failure
// site. Frames are added later, by Attach or Wrap, as the failure propagates.
//
// Options follow the functional-option pattern: they run once, at
// construction, and never afterwards.
package parsectx

import "strconv"

// Option configures an *Error at construction.
type Option func(*Error)

// WithCause sets the underlying error returned by Unwrap.
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// WithMessage overrides the default message.
func WithMessage(msg string) Option { return func(e *Error) { e.msg = msg } }

// WithMaxFrames caps how many frames the error keeps. When a new frame would
// exceed n, the oldest (innermost) frames are dropped. n <= 0 means unbounded.
func WithMaxFrames(n int) Option { return func(e *Error) { e.maxFrames = n } }

func build(e *Error, opts []Option) *Error {
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}
	return e
}

// New creates a parse failure with an explicit code and message.
func New(input Input, code Code, msg string, opts ...Option) *Error {
	return build(&Error{code: code, msg: msg, span: spanOf(input)}, opts)
}

// Expected reports that the input at input did not contain expected.
func Expected(input Input, expected string, opts ...Option) *Error {
	return build(&Error{code: CodeExpected, span: spanOf(input), expected: expected}, opts)
}

// Invalid reports that the value at input could not be interpreted.
func Invalid(input Input, reason string, opts ...Option) *Error {
	return build(&Error{code: CodeInvalid, msg: reason, span: spanOf(input)}, opts)
}

// Incomplete reports that input ended early and at least needed more bytes
// are required. needed <= 0 means the amount is unknown.
func Incomplete(input Input, needed int, opts ...Option) *Error {
	if needed < 0 {
		needed = 0
	}
	e := &Error{code: CodeIncomplete, span: spanOf(input), needed: needed}
	if needed > 0 {
		e.msg = "unexpected end of input, need " + strconv.Itoa(needed) + " more byte"
		if needed > 1 {
			e.msg += "s"
		}
	}
	return build(e, opts)
}

// Trailing reports that input remained after a complete parse.
func Trailing(input Input, opts ...Option) *Error {
	n := spanOf(input).Len()
	msg := "unexpected trailing input (" + strconv.Itoa(n) + " byte"
	if n != 1 {
		msg += "s"
	}
	msg += ")"
	return build(&Error{code: CodeTrailing, msg: msg, span: spanOf(input)}, opts)
}

// From adopts err as a parse failure at input.
//   - nil → nil
//   - *Error anywhere in the chain → that *Error, unchanged
//   - anything else → a CodeForeign *Error with err as cause
func From(input Input, err error, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	if pe, ok := asError(err); ok {
		return pe
	}
	return build(&Error{code: CodeForeign, span: spanOf(input), cause: err}, opts)
}
