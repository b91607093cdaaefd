// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hex

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/binspan/src/gc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nineBytes = []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99}

func TestByteTables(t *testing.T) {
	for i := range 256 {
		b := byte(i)
		assert.Equal(t, fmt.Sprintf("%02x", i), Lower(b))
		assert.Equal(t, fmt.Sprintf("%02X", i), Upper(b))
	}
}

func TestByteHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(byte) string
		in   byte
		want string
	}{
		{name: "ToHex", fn: ByteToHex, in: 0xa7, want: "A7"},
		{name: "ToHex zero", fn: ByteToHex, in: 0x00, want: "00"},
		{name: "ToLowerHex", fn: ByteToLowerHex, in: 0xf0, want: "f0"},
		{name: "ToUpperHex", fn: ByteToUpperHex, in: 0xf0, want: "F0"},
		{name: "ToUpperHex max", fn: ByteToUpperHex, in: 0xff, want: "FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestFormatterGrouping(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		delimiter string
		lower     bool
		want      string
	}{
		{name: "Nine bytes dash", data: nineBytes, delimiter: "-", want: "11-22-33-44-55-66-77-88--99"},
		{name: "Nine bytes no delimiter", data: nineBytes, delimiter: "", want: "112233445566778899"},
		{name: "Nine bytes space", data: nineBytes, delimiter: " ", want: "11 22 33 44 55 66 77 88  99"},
		{name: "Exactly eight", data: nineBytes[:8], delimiter: "-", want: "11-22-33-44-55-66-77-88"},
		{name: "Single byte", data: []byte{0xAB}, delimiter: "-", want: "AB"},
		{name: "Empty", data: []byte{}, delimiter: "-", want: ""},
		{name: "Lower case", data: []byte{0xAB, 0xCD}, delimiter: ":", lower: true, want: "ab:cd"},
		{
			name:      "Seventeen bytes",
			data:      []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
			delimiter: "-",
			want:      "00-01-02-03-04-05-06-07--08-09-0A-0B-0C-0D-0E-0F--10",
		},
		{name: "Multi-char delimiter", data: nineBytes, delimiter: ", ", want: "11, 22, 33, 44, 55, 66, 77, 88, , 99"},
	}

	f := NewFormatter(gc.NewTextPool(2))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.lower {
				got = f.Lower(tt.data, 0, len(tt.data), tt.delimiter)
			} else {
				got = f.Upper(tt.data, 0, len(tt.data), tt.delimiter)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatterRange(t *testing.T) {
	f := NewFormatter(nil)

	assert.Equal(t, "33-44-55", f.Upper(nineBytes, 2, 3, "-"))
	assert.Equal(t, "", f.Upper(nineBytes, 9, 0, "-"))
}

func TestFormatterReturnsBuffer(t *testing.T) {
	texts := gc.NewTextPool(4)
	f := NewFormatter(texts)

	for range 10 {
		f.Upper(nineBytes, 0, len(nineBytes), "-")
	}

	m := texts.Metrics()
	assert.Equal(t, int64(1), m.Created, "sequential formatting should reuse one buffer")
	assert.Equal(t, int64(9), m.Reused)
	assert.Equal(t, 1, m.Idle, "buffer must be back in the pool after formatting")
}

func TestFormatterReturnsBufferOnPanic(t *testing.T) {
	texts := gc.NewTextPool(4)
	f := NewFormatter(texts)

	// Slicing is checked before the buffer is rented.
	assert.Panics(t, func() { f.Upper(nineBytes, 5, 10, "-") })
	assert.Zero(t, texts.Metrics().Created)
}

func TestFormatterLargeOutputIsTrimmed(t *testing.T) {
	texts := gc.NewTextPool(1)
	f := NewFormatter(texts)

	// 20 KiB renders as 60 KiB of text, more than gc.MaxCapacity.
	data := make([]byte, 20*1024)
	out := f.Upper(data, 0, len(data), "-")

	require.True(t, strings.HasPrefix(out, "00-00"))
	assert.Equal(t, 1, texts.Metrics().Idle)

	buf := texts.Rent()
	defer texts.Free(buf)
	assert.Equal(t, 0, buf.Len())
}

func TestSliceHelpers(t *testing.T) {
	data := []byte{0x11, 0xFF, 0xB7}

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{name: "ToHex", fn: func() (string, error) { return ToHex(data) }, want: "11-FF-B7"},
		{name: "ToHexDelim", fn: func() (string, error) { return ToHexDelim(data, "") }, want: "11FFB7"},
		{name: "ToHexRange", fn: func() (string, error) { return ToHexRange(data, 1, 2) }, want: "FF-B7"},
		{name: "ToHexRangeDelim", fn: func() (string, error) { return ToHexRangeDelim(data, 0, 2, " ") }, want: "11 FF"},
		{name: "ToLowerHex", fn: func() (string, error) { return ToLowerHex(data) }, want: "11-ff-b7"},
		{name: "ToLowerHexDelim", fn: func() (string, error) { return ToLowerHexDelim(data, ":") }, want: "11:ff:b7"},
		{name: "ToLowerHexRange", fn: func() (string, error) { return ToLowerHexRange(data, 2, 1) }, want: "b7"},
		{name: "ToLowerHexRangeDelim", fn: func() (string, error) { return ToLowerHexRangeDelim(data, 0, 3, "") }, want: "11ffb7"},
		{name: "ToUpperHex", fn: func() (string, error) { return ToUpperHex(data) }, want: "11-FF-B7"},
		{name: "ToUpperHexDelim", fn: func() (string, error) { return ToUpperHexDelim(data, ".") }, want: "11.FF.B7"},
		{name: "ToUpperHexRange", fn: func() (string, error) { return ToUpperHexRange(data, 0, 0) }, want: ""},
		{name: "ToUpperHexRangeDelim", fn: func() (string, error) { return ToUpperHexRangeDelim(data, 1, 1, "-") }, want: "FF"},
		{name: "Empty slice", fn: func() (string, error) { return ToHex([]byte{}) }, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSliceHelpersValidation(t *testing.T) {
	data := []byte{1, 2, 3}

	tests := []struct {
		name      string
		fn        func() (string, error)
		wantErr   error
		wantParam string
	}{
		{name: "Nil ToHex", fn: func() (string, error) { return ToHex(nil) }, wantErr: ErrInvalidArgument},
		{name: "Nil ToLowerHexDelim", fn: func() (string, error) { return ToLowerHexDelim(nil, "-") }, wantErr: ErrInvalidArgument},
		{name: "Nil range", fn: func() (string, error) { return ToHexRange(nil, 0, 0) }, wantErr: ErrInvalidArgument},
		{name: "Negative offset", fn: func() (string, error) { return ToHexRange(data, -1, 1) }, wantErr: ErrOutOfRange, wantParam: "offset"},
		{name: "Negative count", fn: func() (string, error) { return ToLowerHexRange(data, 0, -1) }, wantErr: ErrOutOfRange, wantParam: "count"},
		{name: "Past end", fn: func() (string, error) { return ToUpperHexRangeDelim(data, 2, 2, "") }, wantErr: ErrOutOfRange, wantParam: "offset+count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.wantParam != "" {
				var rangeErr *RangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, tt.wantParam, rangeErr.Param)
			}
		})
	}
}

func TestFormatterConcurrent(t *testing.T) {
	const goroutines = 50

	texts := gc.NewTextPool(4)
	f := NewFormatter(texts)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			data := []byte{byte(id), byte(id + 1)}
			want := Upper(byte(id)) + "-" + Upper(byte(id+1))
			for range 200 {
				assert.Equal(t, want, f.Upper(data, 0, 2, "-"))
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, texts.Metrics().Idle, 4)
}

func BenchmarkFormatterUpper(b *testing.B) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	b.ReportAllocs()

	for b.Loop() {
		Default.Upper(data, 0, len(data), "-")
	}
}
