// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package hex formats bytes as hexadecimal text.
//
// Every byte value maps to a precomputed two-character string in a lower-case
// and an upper-case table, so formatting never converts case per call.
// Multi-byte output is assembled in a text buffer rented from a [gc.TextPool]
// and joined by a delimiter. The delimiter is doubled after every 8 bytes to
// visually group the output:
//
//	11-22-33-44-55-66-77-88--99
//
// [gc.TextPool]: https://pkg.go.dev/github.com/H0llyW00dzZ/binspan/src/gc#TextPool
package hex
