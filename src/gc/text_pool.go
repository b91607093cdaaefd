// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/H0llyW00dzZ/binspan/src/pool"
	"github.com/valyala/bytebufferpool"
)

const (
	// InitialCapacity is the capacity, in bytes, of a newly built buffer.
	InitialCapacity = 512
	// MaxCapacity is the largest capacity a buffer keeps once freed.
	// Larger buffers are trimmed back before they return to the pool.
	MaxCapacity = 40 * 1024
	// MaxItems is the default number of idle buffers a pool retains.
	MaxItems = 64
)

// Buffer defines the interface for a reusable growable text buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.WriterTo
	io.ReaderFrom
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// TextPool is a bounded pool of [Buffer] values.
//
// TextPool is safe for concurrent use by multiple goroutines.
type TextPool struct {
	p *pool.Bounded[*bytebufferpool.ByteBuffer]
}

// NewTextPool returns a pool that retains at most maxItems idle buffers.
// A non-positive maxItems falls back to [MaxItems].
func NewTextPool(maxItems int) *TextPool {
	if maxItems <= 0 {
		maxItems = MaxItems
	}
	return &TextPool{p: pool.New(newByteBuffer, maxItems)}
}

func newByteBuffer() *bytebufferpool.ByteBuffer {
	return &bytebufferpool.ByteBuffer{B: make([]byte, 0, InitialCapacity)}
}

// Rent returns an empty buffer, either idle or newly built.
func (t *TextPool) Rent() Buffer { return t.p.Rent() }

// Free clears b and returns it to the pool. Nil values and buffers that were
// not produced by a TextPool are ignored. A buffer that grew beyond
// [MaxCapacity] has its storage replaced with a [MaxCapacity] one first, or
// released outright when the pool is already full and the buffer will be
// dropped.
//
// The caller must not use b after Free returns.
func (t *TextPool) Free(b Buffer) {
	buf, ok := b.(*bytebufferpool.ByteBuffer)
	if !ok || buf == nil {
		return
	}

	buf.Reset()
	if cap(buf.B) > MaxCapacity {
		if t.p.Len() < t.p.Cap() {
			buf.B = make([]byte, 0, MaxCapacity)
		} else {
			// A nil B is valid; the next write regrows it.
			buf.B = nil
		}
	}

	t.p.Free(buf)
}

// Metrics returns a snapshot of the underlying pool counters.
func (t *TextPool) Metrics() pool.Metrics { return t.p.Metrics() }

// Default is the text pool shared by the hex formatter and the JSON logger
// when no explicit pool is supplied.
//
// Example usage:
//
//	buf := gc.Default.Rent()
//	defer gc.Default.Free(buf) // Reset and return the buffer, even on error paths.
//
//	buf.WriteString("frame: ")
//	buf.WriteString(span.String())
//	return buf.String()
var Default = NewTextPool(MaxItems)
