// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package buffer

import (
	"bytes"

	"github.com/H0llyW00dzZ/binspan/src/hex"
	"github.com/H0llyW00dzZ/binspan/src/internal/verify"
)

// EmptyText is what an empty span renders as.
const EmptyText = "<empty>"

// emptyArray backs Empty and is returned by ToArray for empty spans.
var emptyArray = []byte{}

// Span is a view of count bytes starting at offset in buf.
//
// The zero value is an empty span.
type Span struct {
	buf    []byte
	offset int
	count  int
}

// Empty returns the canonical empty span.
func Empty() Span { return Span{buf: emptyArray} }

// From returns a span covering all of buf.
//
// Unlike [FromCount] and [FromSegment], which fail with [ErrInvalidArgument]
// for a nil buf, From treats nil as the empty slice it is in Go and returns
// [Empty]. From never fails.
func From(buf ...byte) Span {
	if buf == nil {
		return Empty()
	}
	return Span{buf: buf, count: len(buf)}
}

// FromCount returns a span covering buf[:count].
func FromCount(buf []byte, count int) (Span, error) {
	return FromSegment(buf, 0, count)
}

// FromSegment returns a span covering buf[offset:offset+count].
//
// It fails with [ErrInvalidArgument] for a nil buf and with a [*RangeError]
// naming "offset", "count" or "offset+count" for a bad range.
func FromSegment(buf []byte, offset, count int) (Span, error) {
	if err := verify.Segment(buf, offset, count); err != nil {
		return Span{}, err
	}
	return Span{buf: buf, offset: offset, count: count}, nil
}

// Buffer returns the whole backing array. It is never nil.
func (s Span) Buffer() []byte {
	if s.buf == nil {
		return emptyArray
	}
	return s.buf
}

// Offset returns the index in the backing array where data starts.
func (s Span) Offset() int { return s.offset }

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.count }

// IsEmpty reports whether the span holds no bytes.
func (s Span) IsEmpty() bool { return s.count == 0 }

// FreeBytes returns the number of unused bytes after the data in the
// backing array.
func (s Span) FreeBytes() int { return len(s.buf) - s.offset - s.count }

// Bytes returns the span's bytes as a slice of the backing array, without
// copying. The result aliases the array and is subject to the same staleness
// rules as the span itself.
func (s Span) Bytes() []byte {
	return s.buf[s.offset : s.offset+s.count : s.offset+s.count]
}

// At returns the byte at index i of the span.
func (s Span) At(i int) (byte, error) {
	if err := verify.Index(i, s.count); err != nil {
		return 0, err
	}
	return s.buf[s.offset+i], nil
}

// Equal reports whether s and other hold the same bytes.
func (s Span) Equal(other Span) bool { return bytes.Equal(s.Bytes(), other.Bytes()) }

// Clear returns an empty span over the same backing array, so that later
// appends can reuse its full capacity from index 0.
func (s Span) Clear() Span { return Span{buf: s.buf} }

// Discard returns a span without the first n bytes. The backing array is
// shared; nothing is copied. Discarding every byte yields an empty span at
// offset 0 over the same array.
func (s Span) Discard(n int) (Span, error) {
	if err := verify.Count(n, s.count); err != nil {
		return Span{}, err
	}

	switch n {
	case 0:
		return s, nil
	case s.count:
		return Span{buf: s.buf}, nil
	}
	return Span{buf: s.buf, offset: s.offset + n, count: s.count - n}, nil
}

// Slice returns the sub-span of length bytes starting at index. The backing
// array is shared; nothing is copied.
func (s Span) Slice(index, length int) (Span, error) {
	if err := verify.IndexCount(index, length, s.count); err != nil {
		return Span{}, err
	}

	if length == s.count {
		return s, nil
	}
	return Span{buf: s.buf, offset: s.offset + index, count: length}, nil
}

// Clone returns a span over a newly allocated array holding a copy of the
// span's bytes.
func (s Span) Clone() Span {
	if s.IsEmpty() {
		return Empty()
	}
	return Span{buf: s.ToArray(), count: s.count}
}

// ToArray returns a newly allocated copy of the span's bytes. An empty span
// yields a shared zero-length slice, never nil.
func (s Span) ToArray() []byte {
	if s.IsEmpty() {
		return emptyArray
	}
	out := make([]byte, s.count)
	copy(out, s.buf[s.offset:s.offset+s.count])
	return out
}

// String renders the span as upper-case hex pairs joined by "-", for example
// "11-22-33". An empty span renders as "<empty>".
func (s Span) String() string { return s.Format(hex.DefaultDelimiter) }

// Format renders the span as upper-case hex pairs joined by delimiter. The
// delimiter is doubled after every 8 bytes.
func (s Span) Format(delimiter string) string {
	if s.IsEmpty() {
		return EmptyText
	}
	return hex.Default.Upper(s.buf, s.offset, s.count, delimiter)
}

// FormatLower is like [Span.Format] with lower-case hex pairs.
func (s Span) FormatLower(delimiter string) string {
	if s.IsEmpty() {
		return EmptyText
	}
	return hex.Default.Lower(s.buf, s.offset, s.count, delimiter)
}
