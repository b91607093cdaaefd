// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for binspan, a hex dump
// tool built on byte spans. It implements a Cobra-based CLI that streams
// each input through a window span, emits fixed-width hex lines with the
// grouped delimiter layout, and can report JSON summaries and pool metrics.
// Multiple inputs are processed concurrently and written in argument order.
// The package handles file I/O, context cancellation, configuration files,
// and integrates with the logger package for diagnostics.
package cli
