// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package stopwatch

import "github.com/H0llyW00dzZ/binspan/src/pool"

// DefaultMaxItems is the number of idle stopwatches a pool retains by default.
const DefaultMaxItems = 64

// Pool is a bounded pool of [Stopwatch] values.
//
// Pool is safe for concurrent use by multiple goroutines; each rented
// Stopwatch belongs to a single goroutine until freed.
type Pool struct {
	p *pool.Bounded[*Stopwatch]
}

// NewPool returns a pool that retains at most maxItems idle stopwatches.
// A non-positive maxItems falls back to [DefaultMaxItems].
func NewPool(maxItems int) *Pool {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Pool{p: pool.New(New, maxItems)}
}

// Rent returns a stopped stopwatch with zero elapsed time.
func (p *Pool) Rent() *Stopwatch { return p.p.Rent() }

// Free resets sw and returns it to the pool. Nil values are ignored.
func (p *Pool) Free(sw *Stopwatch) {
	if sw == nil {
		return
	}
	sw.Reset()
	p.p.Free(sw)
}

// Metrics returns a snapshot of the underlying pool counters.
func (p *Pool) Metrics() pool.Metrics { return p.p.Metrics() }
