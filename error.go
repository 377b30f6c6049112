// Package parsectx defines how parse failures pick up diagnostic context as they
// propagate outward through nested parsing operations.
//
// Design tenets:
//   - Nothing on the happy path: context values are only consulted on failure.
//   - Interop-first: *Error plays nicely with errors.Is/As via Unwrap.
//   - Non-mutating ergonomics: WithContext returns a new value.
//   - Rendering is lazy: contexts write text only when something displays them.
package parsectx

// Code classifies parse failures into machine-readable categories.
//
// Codes are stringly-typed so callers can define their own without a central
// registry. The core ships a small set in codes.go.
type Code string

// Error is a parse failure enriched with the (span, context) frames recorded
// by every Attach boundary it crossed.
//
// Frames are stored innermost first: the first frame was attached closest to
// the failure site, the last by the outermost caller.
//
// All methods are non-mutating. WithContext returns a NEW *Error, so a shared
// failure value can be enriched along two paths without interference.
type Error struct {
	code      Code
	msg       string
	span      Span
	expected  string
	needed    int
	cause     error
	frames    []Frame
	maxFrames int
}

// Error returns a concise single-line description. Frames are not included;
// use %+v or Render for the full chain.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message()
	if e.code == "" {
		return msg + " at " + e.span.String()
	}
	return string(e.code) + ": " + msg + " at " + e.span.String()
}

// Message returns the failure description, falling back to a description
// derived from the code when none was set.
func (e *Error) Message() string {
	if e.msg != "" {
		return e.msg
	}
	switch {
	case e.code == CodeExpected && e.expected != "":
		return "expected " + e.expected
	case e.code == CodeIncomplete && e.needed > 0:
		return "unexpected end of input"
	case e.cause != nil:
		return e.cause.Error()
	case e.code != "":
		return string(e.code)
	}
	return "parse error"
}

func (e *Error) Unwrap() error { return e.cause }

// Code returns the classification code ("" if unspecified).
func (e *Error) Code() Code { return e.code }

// Span returns where in the input the failure occurred.
func (e *Error) Span() Span { return e.span }

// ExpectedValue returns the raw expected text recorded at the failure site.
// It is only set for CodeExpected failures.
func (e *Error) ExpectedValue() string { return e.expected }

// Needed returns how many more bytes of input would have been required, for
// CodeIncomplete failures. Zero means unknown or not applicable.
func (e *Error) Needed() int { return e.needed }

// Frames returns a COPY of the attached frames, innermost first.
func (e *Error) Frames() []Frame {
	if len(e.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(e.frames))
	copy(out, e.frames)
	return out
}

// WithContext records one (span, context) frame and returns a NEW *Error.
// The receiver is left unchanged. When the error was built with
// WithMaxFrames(n), only the newest n frames are kept.
func (e *Error) WithContext(input Input, ctx Context) *Error {
	n := e.clone(1)
	n.frames = append(n.frames, Frame{Span: spanOf(input), Context: ctx})
	if n.maxFrames > 0 && len(n.frames) > n.maxFrames {
		keep := n.frames[len(n.frames)-n.maxFrames:]
		copied := make([]Frame, len(keep))
		copy(copied, keep)
		n.frames = copied
	}
	return n
}

// clone copies e with room for extra more frames. The frame slice is always
// freshly allocated so appends never alias the receiver's backing array.
func (e *Error) clone(extra int) *Error {
	n := *e
	n.frames = make([]Frame, len(e.frames), len(e.frames)+extra)
	copy(n.frames, e.frames)
	return &n
}

func spanOf(input Input) Span {
	if input == nil {
		return Span{}
	}
	return input.Span()
}

// *Error satisfies the WithContext constraint.
var _ = Attach[struct{}, *Error]
