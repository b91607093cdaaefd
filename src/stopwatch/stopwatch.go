// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package stopwatch

import "time"

// Stopwatch accumulates elapsed time across Start/Stop intervals.
//
// A Stopwatch is not safe for concurrent use.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	running bool
}

// New returns a stopped Stopwatch with zero elapsed time.
func New() *Stopwatch { return &Stopwatch{now: time.Now} }

// Start begins or resumes measuring. It does nothing if already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = s.now()
	s.running = true
}

// Stop pauses measuring, keeping the elapsed time so far.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.started)
	s.running = false
}

// Reset stops the stopwatch and clears the elapsed time.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
	s.started = time.Time{}
}

// Restart clears the elapsed time and starts measuring again.
func (s *Stopwatch) Restart() {
	s.Reset()
	s.Start()
}

// IsRunning reports whether the stopwatch is measuring.
func (s *Stopwatch) IsRunning() bool { return s.running }

// Elapsed returns the total measured time, including the current interval
// when running.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.now().Sub(s.started)
	}
	return s.elapsed
}
