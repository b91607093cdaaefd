// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pool

import (
	"reflect"
	"sync/atomic"
)

// DefaultCapacity is the number of idle instances kept when [New] is given a
// non-positive capacity.
const DefaultCapacity = 64

// Bounded is a thread-safe pool holding up to a fixed number of idle
// instances of T.
//
// The idle set is a buffered channel, so a single instance can only ever be
// received by one renter. No ordering between idle instances is guaranteed.
//
// Bounded is safe for concurrent use by multiple goroutines.
type Bounded[T any] struct {
	factory func() T
	idle    chan T

	created  atomic.Int64
	reused   atomic.Int64
	returned atomic.Int64
	dropped  atomic.Int64
}

// Metrics is a point-in-time snapshot of pool usage.
type Metrics struct {
	Capacity int   // Maximum number of idle instances
	Idle     int   // Idle instances at snapshot time
	Created  int64 // Instances built by the factory
	Reused   int64 // Rents satisfied from the idle set
	Returned int64 // Frees that kept the instance
	Dropped  int64 // Frees discarded because the pool was full
}

// New creates a pool that builds instances with factory and retains at most
// capacity idle ones. A non-positive capacity falls back to [DefaultCapacity].
//
// New panics if factory is nil.
func New[T any](factory func() T, capacity int) *Bounded[T] {
	if factory == nil {
		panic("pool: nil factory")
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bounded[T]{
		factory: factory,
		idle:    make(chan T, capacity),
	}
}

// Rent returns an idle instance if one is available, otherwise a new one
// from the factory. A panic raised by the factory propagates to the caller.
func (b *Bounded[T]) Rent() T {
	select {
	case item := <-b.idle:
		b.reused.Add(1)
		return item
	default:
	}

	item := b.factory()
	b.created.Add(1)
	return item
}

// Free hands item back to the pool. Nil values are ignored. When the pool
// already holds its capacity of idle instances the item is dropped.
//
// The caller must not use item after Free returns.
func (b *Bounded[T]) Free(item T) {
	if isNil(item) {
		return
	}

	select {
	case b.idle <- item:
		b.returned.Add(1)
	default:
		b.dropped.Add(1)
	}
}

// Len returns the number of idle instances.
func (b *Bounded[T]) Len() int { return len(b.idle) }

// Cap returns the maximum number of idle instances.
func (b *Bounded[T]) Cap() int { return cap(b.idle) }

// Metrics returns a snapshot of the pool counters.
func (b *Bounded[T]) Metrics() Metrics {
	return Metrics{
		Capacity: cap(b.idle),
		Idle:     len(b.idle),
		Created:  b.created.Load(),
		Reused:   b.reused.Load(),
		Returned: b.returned.Load(),
		Dropped:  b.dropped.Load(),
	}
}

// isNil reports whether v holds no value: a nil interface or a nil
// pointer, map, slice, channel or function.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
