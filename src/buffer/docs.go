// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package buffer implements [Span], a value-type view of a contiguous range
// of bytes inside a possibly larger, reusable byte slice.
//
// Spans are meant for assembling byte streams such as protocol frames with
// as little copying as possible. Every operation returns a new Span; none
// changes the receiver. [Span.Append] picks one of three strategies:
//
//   - write into the free tail of the backing array,
//   - shift the data to the start of the array to reclaim leading slack,
//     then write,
//   - allocate a new array of exactly the combined length.
//
// # Aliasing
//
// Spans derived from each other with [Span.Slice], [Span.Discard] or
// [Span.Clear] share the backing array. The first two Append strategies
// write into that array, so after s.Append(d) any other span over s's array
// that overlaps the written or shifted region holds stale bytes. Use
// [Span.Clone] when an independent copy is needed.
//
// Spans carry no synchronization. Concurrent appends to spans sharing an
// array are a caller error.
package buffer
