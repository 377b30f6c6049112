// attach_test.go — Attach/Wrap plumbing and nesting scenarios.
package parsectx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recErr records every WithContext call it receives.
type recErr struct {
	calls []recCall
}

type recCall struct {
	input Input
	ctx   Context
}

func (e *recErr) Error() string { return fmt.Sprintf("rec(%d)", len(e.calls)) }

func (e *recErr) WithContext(input Input, ctx Context) *recErr {
	e.calls = append(e.calls, recCall{input: input, ctx: ctx})
	return e
}

func TestAttach_SuccessPassesThrough(t *testing.T) {
	t.Parallel()

	calls := 0
	ctx := countingContext{calls: &calls}
	in := NewString("42")

	ran := 0
	v, err := Attach(in, ctx, func() (string, *recErr) {
		ran++
		return "forty-two", nil
	})
	require.Nil(t, err)
	assert.Equal(t, "forty-two", v)
	assert.Equal(t, 1, ran, "step must run exactly once")
	assert.Equal(t, 0, calls, "context must not be rendered on success")
}

func TestAttach_FailureAttachesExactlyOnce(t *testing.T) {
	t.Parallel()

	in := NewString("abc")
	ctx := ExpectedContext{Op: "parse word", Want: "letter"}
	inner := &recErr{}

	v, err := Attach(in, ctx, func() (int, *recErr) {
		return 99, inner
	})
	require.NotNil(t, err)
	assert.Same(t, inner, err)
	assert.Equal(t, 0, v, "failed step yields the zero value")
	require.Len(t, inner.calls, 1)
	assert.Equal(t, in, inner.calls[0].input)
	assert.Equal(t, Context(ctx), inner.calls[0].ctx)
}

func TestAttach_DoesNotRenderOnFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Attach(NewString("x"), countingContext{calls: &calls}, func() (int, *Error) {
		return 0, Invalid(NewString("x"), "bad")
	})
	require.NotNil(t, err)
	assert.Equal(t, 0, calls, "attaching never renders")
	require.Len(t, err.Frames(), 1)
}

func TestAttach_TailAttachKeepsExistingFrames(t *testing.T) {
	t.Parallel()

	in := NewString("abc")
	base := Invalid(in, "bad").
		WithContext(in, Label("first")).
		WithContext(in, Label("second"))

	_, err := Attach(in, Label("third"), func() (struct{}, *Error) {
		return struct{}{}, base
	})
	require.NotNil(t, err)

	frames := err.Frames()
	require.Len(t, frames, 3)
	for i, want := range []Label{"first", "second", "third"} {
		got, ok := FrameAs[Label](frames[i])
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Len(t, base.Frames(), 2, "receiver must not be mutated")
}

func TestAttach_PairScenario(t *testing.T) {
	t.Parallel()

	doc := NewString("0123456789ab,cdef")
	_, rest, perr := doc.Split(10)
	require.Nil(t, perr)
	header, perr := rest.Peek(2)
	require.Nil(t, perr)
	require.Equal(t, Span{Start: 10, End: 12}, header.Span())

	_, err := Attach(header, ExpectedContext{Op: "parse header", Want: "comma"}, func() (int, *Error) {
		return 0, Expected(header, ",")
	})
	require.NotNil(t, err)

	fr, ok := NewestFrame(err)
	require.True(t, ok)
	assert.Equal(t, Span{Start: 10, End: 12}, fr.Span)

	op, ferr := fr.Operation()
	require.NoError(t, ferr)
	assert.Equal(t, "parse header", op)
	require.True(t, fr.HasExpected())
	exp, ferr := fr.Expected()
	require.NoError(t, ferr)
	assert.Equal(t, "comma", exp)
}

func TestAttach_OperationOnlyScenario(t *testing.T) {
	t.Parallel()

	in := NewString("body")
	_, err := Attach(in, OperationContext("parse body"), func() (int, *Error) {
		return 0, Invalid(in, "unreadable")
	})
	require.NotNil(t, err)

	fr, ok := NewestFrame(err)
	require.True(t, ok)
	assert.False(t, fr.HasExpected())

	_, ferr := fr.Expected()
	assert.ErrorIs(t, ferr, ErrFormat)

	assert.ErrorIs(t, fr.Context.Expected(failingWriter{}), ErrNoExpected)
}

func TestAttach_NestedScenario(t *testing.T) {
	t.Parallel()

	in := NewString("12x")
	_, rest, _ := in.Split(2)
	digit, _ := rest.Peek(1)

	_, err := Attach(in, OperationContext("parse number"), func() (int, *Error) {
		return Attach(digit, OperationContext("parse digit"), func() (int, *Error) {
			return 0, Expected(digit, "digit")
		})
	})
	require.NotNil(t, err)

	frames := err.Frames()
	require.Len(t, frames, 2)

	assert.Equal(t, Span{Start: 2, End: 3}, frames[0].Span)
	op, _ := frames[0].Operation()
	assert.Equal(t, "parse digit", op)

	assert.Equal(t, Span{Start: 0, End: 3}, frames[1].Span)
	op, _ = frames[1].Operation()
	assert.Equal(t, "parse number", op)
}

func TestAttach_NilInputRecordsZeroSpan(t *testing.T) {
	t.Parallel()

	_, err := Attach(nil, Label("x"), func() (int, *Error) {
		return 0, New(nil, CodeInvalid, "boom")
	})
	require.NotNil(t, err)
	fr, ok := NewestFrame(err)
	require.True(t, ok)
	assert.Equal(t, Span{}, fr.Span)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	in := NewString("abc")

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(in, Label("x"), nil))
	})

	t.Run("parse error is enriched", func(t *testing.T) {
		base := Expected(in, "digit")
		err := Wrap(in, OperationContext("parse number"), base)

		var pe *Error
		require.ErrorAs(t, err, &pe)
		assert.Len(t, pe.Frames(), 1)
		assert.Empty(t, base.Frames())
		assert.Equal(t, CodeExpected, pe.Code())
	})

	t.Run("parse error behind fmt wrapping", func(t *testing.T) {
		base := Expected(in, "digit")
		err := Wrap(in, OperationContext("parse number"), fmt.Errorf("step: %w", base))
		assert.Equal(t, CodeExpected, CodeOf(err))
		fr, ok := NewestFrame(err)
		require.True(t, ok)
		op, _ := fr.Operation()
		assert.Equal(t, "parse number", op)
	})

	t.Run("foreign error is adopted", func(t *testing.T) {
		ioErr := errors.New("read failed")
		err := Wrap(in, OperationContext("read header"), ioErr)
		assert.Equal(t, CodeForeign, CodeOf(err))
		assert.ErrorIs(t, err, ioErr)
		assert.Len(t, FramesOf(err), 1)
	})
}
