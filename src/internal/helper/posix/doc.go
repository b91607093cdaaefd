// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers for presenting the running program the same
// way on [POSIX] systems and Windows.
//
// The cli package uses [ExecutableName] for its usage line, so that a binary
// renamed or invoked through a path still shows its own name:
//
//	cmd := &cobra.Command{
//	    Use: posix.ExecutableName(os.Args, "binspan") + " [FILE...]",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
