// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package verify holds the argument checks and error values shared by the
// buffer and hex packages. Both packages re-export the sentinels so callers
// never import this package directly.
package verify
