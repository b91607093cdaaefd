// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hex

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

var (
	lowerTable = buildTable(lowerDigits)
	upperTable = buildTable(upperDigits)
)

func buildTable(digits string) *[256]string {
	var t [256]string
	for i := range t {
		t[i] = string([]byte{digits[i>>4], digits[i&0x0f]})
	}
	return &t
}

// Lower returns the lower-case hex pair of b, for example "a7".
func Lower(b byte) string { return lowerTable[b] }

// Upper returns the upper-case hex pair of b, for example "A7".
func Upper(b byte) string { return upperTable[b] }
