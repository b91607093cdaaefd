// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hex

import "github.com/H0llyW00dzZ/binspan/src/gc"

// GroupSize is the number of bytes after which the delimiter is doubled.
const GroupSize = 8

// Formatter renders byte ranges as delimited hex text using buffers rented
// from a [gc.TextPool].
//
// Formatter is safe for concurrent use by multiple goroutines.
type Formatter struct {
	texts *gc.TextPool
}

// NewFormatter returns a Formatter renting from texts, or from [gc.Default]
// when texts is nil.
func NewFormatter(texts *gc.TextPool) *Formatter {
	if texts == nil {
		texts = gc.Default
	}
	return &Formatter{texts: texts}
}

// Default formats through [gc.Default].
var Default = NewFormatter(gc.Default)

// Lower formats buf[offset:offset+count] as lower-case hex pairs.
//
// The range is not validated; callers check it first (see [ToLowerHexRange]).
// An invalid range panics like an out-of-bounds slice expression.
func (f *Formatter) Lower(buf []byte, offset, count int, delimiter string) string {
	return f.format(lowerTable, buf[offset:offset+count], delimiter)
}

// Upper formats buf[offset:offset+count] as upper-case hex pairs.
//
// The range is not validated; callers check it first (see [ToUpperHexRange]).
// An invalid range panics like an out-of-bounds slice expression.
func (f *Formatter) Upper(buf []byte, offset, count int, delimiter string) string {
	return f.format(upperTable, buf[offset:offset+count], delimiter)
}

func (f *Formatter) format(table *[256]string, data []byte, delimiter string) string {
	if len(data) == 0 {
		return ""
	}

	sb := f.texts.Rent()
	defer f.texts.Free(sb)

	for i, b := range data {
		if i > 0 {
			sb.WriteString(delimiter)
			if i%GroupSize == 0 {
				sb.WriteString(delimiter)
			}
		}
		sb.WriteString(table[b])
	}

	return sb.String()
}
