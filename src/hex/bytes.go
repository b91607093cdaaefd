// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hex

import "github.com/H0llyW00dzZ/binspan/src/internal/verify"

// DefaultDelimiter separates hex pairs when no delimiter is given.
const DefaultDelimiter = "-"

var (
	// ErrInvalidArgument is returned for a nil buffer.
	ErrInvalidArgument = verify.ErrInvalidArgument
	// ErrOutOfRange is matched by every [RangeError].
	ErrOutOfRange = verify.ErrOutOfRange
)

// RangeError reports an offset or count outside the buffer.
type RangeError = verify.RangeError

// ByteToHex returns the upper-case hex pair of b, for example "A7".
func ByteToHex(b byte) string { return Upper(b) }

// ByteToLowerHex returns the lower-case hex pair of b, for example "a7".
func ByteToLowerHex(b byte) string { return Lower(b) }

// ByteToUpperHex returns the upper-case hex pair of b, for example "A7".
func ByteToUpperHex(b byte) string { return Upper(b) }

// ToHex formats buf as upper-case hex, for example "11-FF-B7".
func ToHex(buf []byte) (string, error) { return ToUpperHex(buf) }

// ToHexDelim formats buf as upper-case hex joined by delimiter.
func ToHexDelim(buf []byte, delimiter string) (string, error) {
	return ToUpperHexDelim(buf, delimiter)
}

// ToHexRange formats buf[offset:offset+count] as upper-case hex.
func ToHexRange(buf []byte, offset, count int) (string, error) {
	return ToUpperHexRange(buf, offset, count)
}

// ToHexRangeDelim formats buf[offset:offset+count] as upper-case hex joined by delimiter.
func ToHexRangeDelim(buf []byte, offset, count int, delimiter string) (string, error) {
	return ToUpperHexRangeDelim(buf, offset, count, delimiter)
}

// ToUpperHex formats buf as upper-case hex, for example "11-FF-B7".
func ToUpperHex(buf []byte) (string, error) {
	return ToUpperHexDelim(buf, DefaultDelimiter)
}

// ToUpperHexDelim formats buf as upper-case hex joined by delimiter.
func ToUpperHexDelim(buf []byte, delimiter string) (string, error) {
	if err := verify.NotNil(buf, "buffer"); err != nil {
		return "", err
	}
	return Default.Upper(buf, 0, len(buf), delimiter), nil
}

// ToUpperHexRange formats buf[offset:offset+count] as upper-case hex.
func ToUpperHexRange(buf []byte, offset, count int) (string, error) {
	return ToUpperHexRangeDelim(buf, offset, count, DefaultDelimiter)
}

// ToUpperHexRangeDelim formats buf[offset:offset+count] as upper-case hex joined by delimiter.
func ToUpperHexRangeDelim(buf []byte, offset, count int, delimiter string) (string, error) {
	if err := verify.Segment(buf, offset, count); err != nil {
		return "", err
	}
	return Default.Upper(buf, offset, count, delimiter), nil
}

// ToLowerHex formats buf as lower-case hex, for example "11-ff-b7".
func ToLowerHex(buf []byte) (string, error) {
	return ToLowerHexDelim(buf, DefaultDelimiter)
}

// ToLowerHexDelim formats buf as lower-case hex joined by delimiter.
func ToLowerHexDelim(buf []byte, delimiter string) (string, error) {
	if err := verify.NotNil(buf, "buffer"); err != nil {
		return "", err
	}
	return Default.Lower(buf, 0, len(buf), delimiter), nil
}

// ToLowerHexRange formats buf[offset:offset+count] as lower-case hex.
func ToLowerHexRange(buf []byte, offset, count int) (string, error) {
	return ToLowerHexRangeDelim(buf, offset, count, DefaultDelimiter)
}

// ToLowerHexRangeDelim formats buf[offset:offset+count] as lower-case hex joined by delimiter.
func ToLowerHexRangeDelim(buf []byte, offset, count int, delimiter string) (string, error) {
	if err := verify.Segment(buf, offset, count); err != nil {
		return "", err
	}
	return Default.Lower(buf, offset, count, delimiter), nil
}
