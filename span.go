// span.go — input spans and the byte-slice Input.
//
// Spans are absolute: a sub-slice of a Bytes input still reports offsets into
// the original buffer, so frames recorded deep inside a nested parse point at
// the right place in the document.
package parsectx

import (
	"bytes"
	"strconv"
)

// Span is a half-open byte range [Start, End) into the original input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s Span) IsEmpty() bool { return s.Len() == 0 }

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return o.Start >= s.Start && o.End <= s.End
}

// String renders the span as "start..end".
func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}

// Input is the part of a parser's input that failures and frames record.
// Implementations must be cheap to copy; Attach captures one per call.
type Input interface {
	// Span returns the absolute range this input covers.
	Span() Span
	// Bytes returns the covered bytes. Callers must not modify them.
	Bytes() []byte
}

// Bytes is an Input over a byte slice. The zero value is an empty input.
//
// Reading operations return the consumed part and the remainder; neither
// copies the underlying buffer.
type Bytes struct {
	src   []byte
	start int
	end   int
}

// NewBytes wraps b as an Input covering 0..len(b).
func NewBytes(b []byte) Bytes {
	return Bytes{src: b, start: 0, end: len(b)}
}

// NewString wraps s as an Input.
func NewString(s string) Bytes {
	return NewBytes([]byte(s))
}

func (b Bytes) Span() Span    { return Span{Start: b.start, End: b.end} }
func (b Bytes) Bytes() []byte { return b.src[b.start:b.end] }
func (b Bytes) Len() int      { return b.end - b.start }
func (b Bytes) IsEmpty() bool { return b.start == b.end }

func (b Bytes) String() string { return string(b.Bytes()) }

// Split returns the first n bytes and the remainder. If fewer than n bytes
// remain it fails with CodeIncomplete, recording how many more are needed.
func (b Bytes) Split(n int) (head, tail Bytes, err *Error) {
	if n < 0 {
		return Bytes{}, b, Invalid(b, "negative length "+strconv.Itoa(n))
	}
	if n > b.Len() {
		return Bytes{}, b, Incomplete(b, n-b.Len())
	}
	mid := b.start + n
	return Bytes{src: b.src, start: b.start, end: mid}, Bytes{src: b.src, start: mid, end: b.end}, nil
}

// Peek returns the first n bytes without consuming them.
func (b Bytes) Peek(n int) (Bytes, *Error) {
	head, _, err := b.Split(n)
	return head, err
}

// Next consumes a single byte.
func (b Bytes) Next() (byte, Bytes, *Error) {
	head, tail, err := b.Split(1)
	if err != nil {
		return 0, b, err
	}
	return head.src[head.start], tail, nil
}

// ExpectPrefix consumes prefix. A short input fails with CodeIncomplete when
// what is there matches so far, otherwise with CodeExpected.
func (b Bytes) ExpectPrefix(prefix string) (Bytes, *Error) {
	p := []byte(prefix)
	have := b.Bytes()
	if len(have) < len(p) {
		if bytes.HasPrefix(p, have) {
			return b, Incomplete(b, len(p)-len(have))
		}
		return b, Expected(b, strconv.Quote(prefix))
	}
	if !bytes.Equal(have[:len(p)], p) {
		head, _, _ := b.Split(len(p))
		return b, Expected(head, strconv.Quote(prefix))
	}
	_, tail, _ := b.Split(len(p))
	return tail, nil
}

// TakeWhile consumes the longest prefix whose bytes all satisfy pred.
func (b Bytes) TakeWhile(pred func(byte) bool) (taken, rest Bytes) {
	i := b.start
	for i < b.end && pred(b.src[i]) {
		i++
	}
	return Bytes{src: b.src, start: b.start, end: i}, Bytes{src: b.src, start: i, end: b.end}
}

// ExpectEnd fails with CodeTrailing if any input remains.
func (b Bytes) ExpectEnd() *Error {
	if b.IsEmpty() {
		return nil
	}
	return Trailing(b)
}

var _ Input = Bytes{}
