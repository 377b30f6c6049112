// predicates.go — classification helpers over arbitrary error values.
//
// All helpers accept plain errors and use errors.As or Walk, so they see
// through fmt.Errorf("%w") wrapping and errors.Join trees.
//
// Out of scope (by design):
//   • Retry and recovery policy. IsIncomplete and NeededOf report what a
//     streaming caller would need; deciding to wait for it is theirs.
package parsectx

import "errors"

// CodeOf returns the code of the first *Error along err's chain, or "".
func CodeOf(err error) Code {
	if pe, ok := asError(err); ok {
		return pe.code
	}
	return ""
}

// HasCode reports whether any *Error in err's unwrap graph carries code.
func HasCode(err error, code Code) bool {
	found := false
	Walk(err, func(e error) bool {
		if pe, ok := e.(*Error); ok && pe != nil && pe.code == code {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsIncomplete reports whether err failed only because input ran out.
func IsIncomplete(err error) bool {
	return CodeOf(err) == CodeIncomplete
}

// NeededOf returns how many more bytes the first *Error along err's chain
// asked for. ok is false unless that error is CodeIncomplete.
func NeededOf(err error) (n int, ok bool) {
	pe, isPE := asError(err)
	if !isPE || pe.code != CodeIncomplete {
		return 0, false
	}
	return pe.needed, true
}

// IsFormat reports whether err is a diagnostics-rendering failure.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// FramesOf collects frames from every *Error in err's unwrap graph. Errors
// are visited outermost first; each error's frames keep their attach order
// (innermost first).
func FramesOf(err error) []Frame {
	var out []Frame
	Walk(err, func(e error) bool {
		if pe, ok := e.(*Error); ok && pe != nil {
			out = append(out, pe.frames...)
		}
		return true
	})
	return out
}

// NewestFrame returns the most recently attached frame of the first *Error
// along err's chain.
func NewestFrame(err error) (Frame, bool) {
	pe, ok := asError(err)
	if !ok || len(pe.frames) == 0 {
		return Frame{}, false
	}
	return pe.frames[len(pe.frames)-1], true
}
