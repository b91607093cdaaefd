// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package buffer

// Strategy identifies how [Span.Append] stores appended data.
type Strategy int

const (
	// StrategyNone means the data was empty and nothing happens.
	StrategyNone Strategy = iota
	// StrategyInPlace writes into the free tail of the backing array.
	StrategyInPlace
	// StrategyConsolidate shifts the data to index 0 of the backing array,
	// then writes after it.
	StrategyConsolidate
	// StrategyGrow copies both into a new array of exactly the combined length.
	StrategyGrow
)

func (st Strategy) String() string {
	switch st {
	case StrategyNone:
		return "none"
	case StrategyInPlace:
		return "in-place"
	case StrategyConsolidate:
		return "consolidate"
	case StrategyGrow:
		return "grow"
	default:
		return "unknown"
	}
}

// Plan reports the strategy [Span.Append] would use for data, without
// touching any bytes.
func (s Span) Plan(data Span) Strategy {
	if data.IsEmpty() {
		return StrategyNone
	}

	free := s.FreeBytes() - data.count
	if free >= 0 {
		return StrategyInPlace
	}
	if -free <= s.offset {
		return StrategyConsolidate
	}
	return StrategyGrow
}

// Append returns a span holding the receiver's bytes followed by data's.
//
// With [StrategyInPlace] and [StrategyConsolidate] the result shares the
// receiver's backing array and the write happens in it: other spans over
// that array may become stale. With [StrategyGrow] the result owns a new
// array and the receiver's array is untouched. Empty data returns the
// receiver unchanged.
func (s Span) Append(data Span) Span {
	switch s.Plan(data) {
	case StrategyInPlace:
		copy(s.buf[s.offset+s.count:], data.Bytes())
		return Span{buf: s.buf, offset: s.offset, count: s.count + data.count}

	case StrategyConsolidate:
		// copy handles the overlapping left shift.
		copy(s.buf, s.buf[s.offset:s.offset+s.count])
		copy(s.buf[s.count:], data.Bytes())
		return Span{buf: s.buf, count: s.count + data.count}

	case StrategyGrow:
		buf := make([]byte, s.count+data.count)
		copy(buf, s.Bytes())
		copy(buf[s.count:], data.Bytes())
		return Span{buf: buf, count: len(buf)}
	}

	return s
}

// Grow returns a span with the same bytes and at least n free tail bytes.
// If the receiver already has room it is returned unchanged; otherwise the
// bytes move to a new array of at least twice the previous length, so that
// repeated Grow and Append calls copy amortized O(1) bytes per byte appended.
//
// Grow panics if n is negative.
func (s Span) Grow(n int) Span {
	if n < 0 {
		panic("buffer: negative Grow count")
	}
	if s.FreeBytes() >= n {
		return s
	}

	size := max(2*len(s.buf), s.count+n)
	return Span{buf: make([]byte, size)}.Append(s)
}
