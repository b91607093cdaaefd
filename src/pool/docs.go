// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pool provides a generic, capacity-bounded cache of reusable objects.
//
// A [Bounded] pool keeps at most a fixed number of idle instances and creates
// new ones lazily through a factory when none are idle. Returning an instance
// to a full pool drops it and leaves it to the garbage collector. Neither
// [Bounded.Rent] nor [Bounded.Free] ever blocks.
//
// Unlike [sync.Pool], idle instances are never discarded behind the caller's
// back during garbage collection, which keeps the number of constructions
// predictable for expensive-to-build objects such as large text buffers.
//
// The pool is type-agnostic and does not reset instances. Wrappers that know
// the concrete type (see the gc and stopwatch packages) clear observable state
// before handing an instance back.
package pool
