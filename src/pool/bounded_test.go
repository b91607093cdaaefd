// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	id   int64
	used bool
}

func newWidgetFactory() (func() *widget, *atomic.Int64) {
	var seq atomic.Int64
	return func() *widget {
		return &widget{id: seq.Add(1)}
	}, &seq
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{name: "Explicit capacity", capacity: 8, wantCap: 8},
		{name: "Capacity of one", capacity: 1, wantCap: 1},
		{name: "Zero falls back to default", capacity: 0, wantCap: DefaultCapacity},
		{name: "Negative falls back to default", capacity: -5, wantCap: DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, _ := newWidgetFactory()
			p := New(factory, tt.capacity)

			assert.Equal(t, tt.wantCap, p.Cap())
			assert.Equal(t, 0, p.Len(), "new pool should have no idle instances")
		})
	}
}

func TestNewNilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() { New[*widget](nil, 4) })
}

func TestRentCreatesWhenEmpty(t *testing.T) {
	factory, seq := newWidgetFactory()
	p := New(factory, 4)

	a := p.Rent()
	b := p.Rent()

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotSame(t, a, b)
	assert.Equal(t, int64(2), seq.Load())

	m := p.Metrics()
	assert.Equal(t, int64(2), m.Created)
	assert.Equal(t, int64(0), m.Reused)
}

func TestRentReusesFreedInstance(t *testing.T) {
	factory, seq := newWidgetFactory()
	p := New(factory, 4)

	first := p.Rent()
	p.Free(first)

	second := p.Rent()
	assert.Same(t, first, second, "a freed instance must be handed out before a new one is built")
	assert.Equal(t, int64(1), seq.Load())

	m := p.Metrics()
	assert.Equal(t, int64(1), m.Created)
	assert.Equal(t, int64(1), m.Reused)
	assert.Equal(t, int64(1), m.Returned)
}

func TestFreeNilIsIgnored(t *testing.T) {
	factory, _ := newWidgetFactory()
	p := New(factory, 4)

	p.Free(nil)

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, Metrics{Capacity: 4}, p.Metrics())
}

func TestFreeNilForReferenceKinds(t *testing.T) {
	slices := New(func() []byte { return make([]byte, 0, 8) }, 2)
	slices.Free(nil)
	assert.Equal(t, 0, slices.Len())

	maps := New(func() map[string]int { return map[string]int{} }, 2)
	maps.Free(nil)
	assert.Equal(t, 0, maps.Len())

	errs := New(func() error { return errors.New("scratch") }, 2)
	errs.Free(nil)
	assert.Equal(t, 0, errs.Len())
}

func TestFreeValueTypes(t *testing.T) {
	p := New(func() int { return 42 }, 2)

	// Zero values of non-reference kinds are real values, not absent ones.
	p.Free(0)
	p.Free(7)

	assert.Equal(t, 2, p.Len())
}

func TestCapacityBound(t *testing.T) {
	const capacity = 5

	factory, seq := newWidgetFactory()
	p := New(factory, capacity)

	rented := make([]*widget, 0, 2*capacity)
	for range 2 * capacity {
		rented = append(rented, p.Rent())
	}
	require.Equal(t, int64(2*capacity), seq.Load())

	for _, w := range rented {
		p.Free(w)
		assert.LessOrEqual(t, p.Len(), capacity, "idle set exceeded capacity")
	}

	m := p.Metrics()
	assert.Equal(t, capacity, m.Idle)
	assert.Equal(t, int64(capacity), m.Returned)
	assert.Equal(t, int64(capacity), m.Dropped)

	// Draining the idle set must not trigger the factory.
	for range capacity {
		p.Rent()
	}
	assert.Equal(t, int64(2*capacity), seq.Load())
	assert.Equal(t, 0, p.Len())
}

func TestFactoryPanicPropagates(t *testing.T) {
	p := New(func() *widget { panic("factory exploded") }, 2)

	assert.PanicsWithValue(t, "factory exploded", func() { p.Rent() })
	assert.Equal(t, int64(0), p.Metrics().Created)
}

// TestGoroutineCooking verifies no instance is handed to two renters at once
// while 64 goroutines hammer a small pool.
func TestGoroutineCooking(t *testing.T) {
	const (
		goroutines = 64
		iterations = 500
		capacity   = 4
	)

	factory, seq := newWidgetFactory()
	p := New(factory, capacity)

	var (
		inUse      sync.Map
		duplicates atomic.Int64
		overflows  atomic.Int64
		wg         sync.WaitGroup
	)

	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				w := p.Rent()
				if _, loaded := inUse.LoadOrStore(w, struct{}{}); loaded {
					duplicates.Add(1)
				}

				w.used = true

				inUse.Delete(w)
				p.Free(w)

				if p.Len() > capacity {
					overflows.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, duplicates.Load(), "an instance was rented twice concurrently")
	assert.Zero(t, overflows.Load(), "idle set exceeded capacity")

	m := p.Metrics()
	assert.Equal(t, seq.Load(), m.Created)
	assert.Equal(t, int64(goroutines*iterations), m.Created+m.Reused, "every rent is either a creation or a reuse")
	assert.Equal(t, int64(goroutines*iterations), m.Returned+m.Dropped, "every free is either kept or dropped")
	assert.LessOrEqual(t, m.Idle, capacity)
	// Instances are never lost: everything created is idle or was dropped.
	assert.Equal(t, m.Created, int64(m.Idle)+m.Dropped)
}

func BenchmarkRentFree(b *testing.B) {
	factory, _ := newWidgetFactory()
	p := New(factory, DefaultCapacity)

	b.ReportAllocs()

	for b.Loop() {
		w := p.Rent()
		p.Free(w)
	}
}

func BenchmarkRentFreeParallel(b *testing.B) {
	factory, _ := newWidgetFactory()
	p := New(factory, DefaultCapacity)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := p.Rent()
			p.Free(w)
		}
	})
}
