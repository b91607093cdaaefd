// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides a bounded pool of growable text buffers to reduce
// garbage collection overhead. It abstracts the [bytebufferpool] buffer type
// behind the [Buffer] interface and keeps idle buffers in a [pool.Bounded],
// so the number of retained buffers and their size stay capped.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
// [pool.Bounded]: https://pkg.go.dev/github.com/H0llyW00dzZ/binspan/src/pool#Bounded
package gc
