// context.go — the Context capability and its built-in variants.
//
// A Context describes what a parser was attempting when a failure crossed an
// Attach boundary, and optionally what value it expected. Contexts write their
// text into a sink only when something renders them; attaching never writes.
//
// Variants:
//   - Label            bare expected-value text; operation is "context".
//   - ExpectedContext  operation plus optional expected text ("" means none).
//   - OperationContext operation only; no expected value.
package parsectx

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFormat marks a diagnostics-rendering failure. It is never a parse
// failure: errors.Is(err, ErrFormat) is false for every *Error.
var ErrFormat = errors.New("parsectx: format error")

// ErrNoExpected is returned by Expected on a Context whose HasExpected is
// false. Seeing it means the caller skipped the HasExpected check.
var ErrNoExpected = fmt.Errorf("%w: context has no expected value", ErrFormat)

// Context is information surrounding a parse failure.
//
// HasExpected and Expected form a pair: Expected must produce valid output
// whenever HasExpected is true, and must not be called otherwise.
type Context interface {
	// Operation writes what was being attempted. It should read naturally in
	// "error attempting to <operation>". Only sink errors are returned.
	Operation(w io.StringWriter) error

	// HasExpected reports whether Expected is meaningful.
	HasExpected() bool

	// Expected writes the expected value. Contexts without one return
	// ErrNoExpected.
	Expected(w io.StringWriter) error

	// AsAny returns the implementor itself, so holders can recover the
	// concrete type with ContextAs.
	AsAny() any
}

// NoExpected provides the "no expected value" half of Context. Embed it in
// custom contexts that only describe an operation.
type NoExpected struct{}

func (NoExpected) HasExpected() bool                { return false }
func (NoExpected) Expected(_ io.StringWriter) error { return ErrNoExpected }

// ContextAs recovers the concrete type T behind c.
func ContextAs[T any](c Context) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.AsAny().(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// OperationString renders c's operation text.
func OperationString(c Context) (string, error) {
	var sb strings.Builder
	if err := c.Operation(&sb); err != nil {
		return "", wrapFormat(err)
	}
	return sb.String(), nil
}

// ExpectedString renders c's expected text. It checks HasExpected first and
// returns ErrNoExpected instead of calling Expected when there is none.
func ExpectedString(c Context) (string, error) {
	if !c.HasExpected() {
		return "", ErrNoExpected
	}
	var sb strings.Builder
	if err := c.Expected(&sb); err != nil {
		return "", wrapFormat(err)
	}
	return sb.String(), nil
}

// wrapFormat tags a sink error as a rendering failure.
func wrapFormat(err error) error {
	if errors.Is(err, ErrFormat) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFormat, err)
}

// -----------------------------------------------------------------------------
// Label
// -----------------------------------------------------------------------------

// Label is a bare expected-value description, e.g. Label("comma").
type Label string

func (l Label) Operation(w io.StringWriter) error {
	_, err := w.WriteString("context")
	return err
}

func (Label) HasExpected() bool { return true }

func (l Label) Expected(w io.StringWriter) error {
	_, err := w.WriteString(string(l))
	return err
}

func (l Label) AsAny() any { return l }

// -----------------------------------------------------------------------------
// ExpectedContext
// -----------------------------------------------------------------------------

// ExpectedContext names an operation and the value it expected.
//
//	ExpectedContext{Op: "parse header", Want: "comma"}
//
// An empty Want means there is no expected value, not that the empty string
// was expected.
type ExpectedContext struct {
	Op   string
	Want string
}

func (c ExpectedContext) Operation(w io.StringWriter) error {
	_, err := w.WriteString(c.Op)
	return err
}

func (c ExpectedContext) HasExpected() bool { return c.Want != "" }

func (c ExpectedContext) Expected(w io.StringWriter) error {
	_, err := w.WriteString(c.Want)
	return err
}

func (c ExpectedContext) AsAny() any { return c }

func (c ExpectedContext) String() string {
	return fmt.Sprintf("ExpectedContext{Op: %q, Want: %q}", c.Op, c.Want)
}

// -----------------------------------------------------------------------------
// OperationContext
// -----------------------------------------------------------------------------

// OperationContext names an operation with no expected value, e.g.
// OperationContext("parse body").
type OperationContext string

func (c OperationContext) Operation(w io.StringWriter) error {
	_, err := w.WriteString(string(c))
	return err
}

func (OperationContext) HasExpected() bool { return false }

func (OperationContext) Expected(_ io.StringWriter) error { return ErrNoExpected }

func (c OperationContext) AsAny() any { return c }

func (c OperationContext) String() string {
	return fmt.Sprintf("OperationContext(%q)", string(c))
}

var (
	_ Context = Label("")
	_ Context = ExpectedContext{}
	_ Context = OperationContext("")
)
