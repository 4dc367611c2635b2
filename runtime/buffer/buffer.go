// Package buffer implements the growable markup accumulator used by the
// converter.
//
// Besides raw bytes, a Buffer tracks element structure as it is written:
// the spans of completed top-level elements and, for any element still open
// at the tail, the last child completed inside it. This lets the script
// resolver find the base of a subscript or superscript in O(1) instead of
// rescanning markup backwards.
package buffer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pgfjr/tex2mml/core/invariant"
)

// ErrLimitExceeded is recorded when a write would grow the buffer past its
// configured limit. The error is sticky: later writes are dropped.
var ErrLimitExceeded = errors.New("buffer: size limit exceeded")

// Span is the byte range [Start, End) of one element within a buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// openElement is an element whose closing tag has not been written yet.
type openElement struct {
	start   int  // offset of its opening tag
	last    Span // last child completed inside it
	hasLast bool
}

// scanState is the incremental tag scanner state at the tail of the buffer.
type scanState struct {
	inTag    bool
	closing  bool
	tagStart int
	tagLen   int
	prev     byte
	stack    []openElement
}

// Buffer is an owned, growable byte sequence with element tracking.
// The zero value is an empty buffer without a size limit.
type Buffer struct {
	data  []byte
	spans []Span // completed top-level elements, in order
	scan  scanState
	limit int
	err   error
}

// New creates an empty buffer. A positive limit caps the buffer size in
// bytes; zero means unlimited.
func New(limit int) *Buffer {
	invariant.Precondition(limit >= 0, "limit must not be negative, got %d", limit)
	return &Buffer{limit: limit}
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns a view of the content. The slice is only valid until the
// next mutation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns a copy of the content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Err returns the sticky error, if any write was dropped.
func (b *Buffer) Err() error {
	return b.err
}

// Write appends p at the end of the buffer. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if !b.reserve(len(p)) {
		return 0, b.err
	}
	from := len(b.data)
	b.data = append(b.data, p...)
	b.track(from)
	return len(p), nil
}

// WriteString appends s at the end of the buffer.
func (b *Buffer) WriteString(s string) {
	if !b.reserve(len(s)) {
		return
	}
	from := len(b.data)
	b.data = append(b.data, s...)
	b.track(from)
}

// Writef appends formatted text at the end of the buffer.
func (b *Buffer) Writef(format string, args ...interface{}) {
	b.WriteString(fmt.Sprintf(format, args...))
}

// InsertAt inserts s at offset, shifting everything after it to the right.
// An offset at or past the end behaves as an append.
func (b *Buffer) InsertAt(offset int, s string) {
	invariant.Precondition(offset >= 0, "offset must not be negative, got %d", offset)
	if len(s) == 0 {
		return
	}
	if offset >= len(b.data) {
		b.WriteString(s)
		return
	}
	if !b.reserve(len(s)) {
		return
	}

	n := len(b.data)
	b.data = b.data[:n+len(s)]
	copy(b.data[offset+len(s):], b.data[offset:n])
	copy(b.data[offset:], s)

	b.rescanFrom(offset)
}

// Append moves or copies the content of other onto the end of b.
//
// With transfer set and b empty, b adopts other's storage and other is left
// empty. Otherwise the bytes are copied and other is left untouched.
func (b *Buffer) Append(other *Buffer, transfer bool) {
	invariant.NotNil(other, "other")
	if other.err != nil && b.err == nil {
		b.err = other.err
	}
	if len(other.data) == 0 {
		return
	}

	if transfer && len(b.data) == 0 && b.err == nil {
		if b.limit > 0 && len(other.data) > b.limit {
			b.err = ErrLimitExceeded
			return
		}
		b.data, other.data = other.data, nil
		b.spans, other.spans = other.spans, nil
		b.scan, other.scan = other.scan, scanState{}
		return
	}

	if !b.reserve(len(other.data)) {
		return
	}

	shift := len(b.data)
	if !b.scan.inTag && len(b.scan.stack) == 0 {
		// At rest: other's structure carries over unchanged, shifted.
		b.data = append(b.data, other.data...)
		for _, s := range other.spans {
			b.spans = append(b.spans, Span{s.Start + shift, s.End + shift})
		}
		b.scan = other.scan.shifted(shift)
		return
	}

	b.data = append(b.data, other.data...)
	b.track(shift)
}

// Reset zeroes the content and sets the length to zero without releasing
// storage.
func (b *Buffer) Reset() {
	clear(b.data)
	b.data = b.data[:0]
	b.spans = b.spans[:0]
	b.scan = scanState{}
	b.err = nil
}

// Release hands the underlying storage to the caller and leaves b empty.
func (b *Buffer) Release() []byte {
	data := b.data
	b.data = nil
	b.spans = nil
	b.scan = scanState{}
	return data
}

// LastElement returns the span of the last element completed at the tail's
// current nesting level. It reports false when there is none, for example
// when nothing was written yet or an element was just opened.
func (b *Buffer) LastElement() (Span, bool) {
	if n := len(b.scan.stack); n > 0 {
		top := b.scan.stack[n-1]
		return top.last, top.hasLast
	}
	if n := len(b.spans); n > 0 {
		return b.spans[n-1], true
	}
	return Span{}, false
}

// TopLevelCount returns the number of top-level elements, counting an
// element that is still open.
func (b *Buffer) TopLevelCount() int {
	n := len(b.spans)
	if len(b.scan.stack) > 0 {
		n++
	}
	return n
}

// Spans returns a copy of the completed top-level element spans.
func (b *Buffer) Spans() []Span {
	out := make([]Span, len(b.spans))
	copy(out, b.spans)
	return out
}

// Depth returns the number of elements open at the tail.
func (b *Buffer) Depth() int {
	return len(b.scan.stack)
}

// reserve grows storage for n more bytes, doubling at least. It reports
// false and records ErrLimitExceeded when the limit would be crossed.
func (b *Buffer) reserve(n int) bool {
	if b.err != nil {
		return false
	}
	if b.limit > 0 && len(b.data)+n > b.limit {
		b.err = ErrLimitExceeded
		return false
	}
	if cap(b.data)-len(b.data) >= n {
		return true
	}

	newCap := cap(b.data) * 2
	if newCap < len(b.data)+n {
		newCap = len(b.data) + n
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return true
}

// rescanFrom rebuilds element tracking after bytes changed at offset.
// Scanning restarts at the end of the last top-level element that ends at
// or before offset, where the scanner is known to be at rest.
func (b *Buffer) rescanFrom(offset int) {
	keep := sort.Search(len(b.spans), func(i int) bool {
		return b.spans[i].End > offset
	})
	b.spans = b.spans[:keep]

	from := 0
	if keep > 0 {
		from = b.spans[keep-1].End
	}
	b.scan = scanState{}
	b.track(from)
}

// track feeds data[from:] through the tag scanner.
func (b *Buffer) track(from int) {
	s := &b.scan
	for i := from; i < len(b.data); i++ {
		c := b.data[i]
		if !s.inTag {
			if c == '<' {
				s.inTag = true
				s.closing = false
				s.tagStart = i
				s.tagLen = 1
			}
			s.prev = c
			continue
		}

		if s.tagLen == 1 && c == '/' {
			s.closing = true
		}
		s.tagLen++

		if c == '>' {
			s.inTag = false
			switch {
			case s.closing:
				b.closeElement(i + 1)
			case s.prev == '/':
				b.completeChild(Span{Start: s.tagStart, End: i + 1})
			default:
				s.stack = append(s.stack, openElement{start: s.tagStart})
			}
		}
		s.prev = c
	}
}

// closeElement pops the innermost open element, which ends at end.
// A closing tag with nothing open is a row or cell boundary written into a
// body buffer and does not form an element.
func (b *Buffer) closeElement(end int) {
	s := &b.scan
	n := len(s.stack)
	if n == 0 {
		return
	}
	el := s.stack[n-1]
	s.stack = s.stack[:n-1]
	b.completeChild(Span{Start: el.start, End: end})
}

func (b *Buffer) completeChild(span Span) {
	s := &b.scan
	if n := len(s.stack); n > 0 {
		s.stack[n-1].last = span
		s.stack[n-1].hasLast = true
		return
	}
	b.spans = append(b.spans, span)
}

// shifted returns a copy of the scanner state with offsets moved by delta.
func (s scanState) shifted(delta int) scanState {
	out := s
	out.tagStart += delta
	out.stack = make([]openElement, len(s.stack))
	for i, el := range s.stack {
		out.stack[i] = openElement{
			start:   el.start + delta,
			last:    Span{el.last.Start + delta, el.last.End + delta},
			hasLast: el.hasLast,
		}
	}
	return out
}
