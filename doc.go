// doc.go — package documentation for xgx-parsectx
//
// Package parsectx attaches diagnostic context to parse failures as they
// propagate outward through nested parsing operations. Each boundary a
// failure crosses can record "what was being attempted" and "what was
// expected", together with the input span it was working on, without costing
// anything when the parse succeeds.
//
// # Contexts
//
// A Context answers two questions, lazily, by writing into a text sink:
//
//   - Operation: what was being attempted ("parse header").
//   - Expected:  what value was wanted ("comma"), gated by HasExpected.
//
// HasExpected/Expected are an explicit pair. Calling Expected on a context
// whose HasExpected is false is a programming error and returns
// ErrNoExpected rather than an empty string.
//
// Three variants cover the common cases:
//
//	+-------------------------------+-------------+-------------+---------------+
//	| Variant                       | Operation   | HasExpected | Expected      |
//	+-------------------------------+-------------+-------------+---------------+
//	| Label("comma")                | "context"   | true        | "comma"       |
//	| ExpectedContext{Op, Want}     | Op          | Want != ""  | Want          |
//	| OperationContext("parse body")| "parse body"| false       | ErrNoExpected |
//	+-------------------------------+-------------+-------------+---------------+
//
// Custom contexts implement the interface directly; embed NoExpected to get
// the operation-only defaults. AsAny must return the implementor itself so
// ContextAs, FrameAs and FindContext can recover it.
//
// # Attaching
//
// Attach wraps one parsing step:
//
//	v, err := parsectx.Attach(in, parsectx.OperationContext("parse number"), func() (int, *parsectx.Error) {
//	    return parseDigits(in)
//	})
//
// On success the value passes through and neither the input nor the context
// is touched. On failure the error's WithContext is called exactly once.
// Nested Attach calls record frames innermost first. Wrap does the same for
// code that returns plain error values.
//
// # Errors
//
// *Error is the ready-made error type: a code (CodeExpected, CodeInvalid,
// CodeIncomplete, CodeTrailing, CodeForeign), the span where the failure
// occurred, an optional cause and the recorded frames. WithContext is
// copy-on-write. WithMaxFrames bounds growth by keeping the newest frames.
//
// Two failure kinds are never conflated: parse failures are *Error values;
// failures to render a context are ErrFormat (see IsFormat). Attaching never
// renders, so it can never produce ErrFormat.
//
// # Formatting
//
// *Error implements fmt.Formatter:
//   - %v, %s → concise Error()
//   - %+v    → code, message, span, one "attempting to ..." line per frame,
//     then the cause
//   - %q     → quoted Error()
//
// Render produces the %+v form and returns rendering failures instead of
// printing them inline. *Error also implements slog.LogValuer.
//
// # Concurrency
//
// Contexts, spans and *Error values are immutable once built, so independent
// parses may run in parallel and share context values freely.
package parsectx
