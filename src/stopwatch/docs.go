// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package stopwatch provides an elapsed-time timer and a bounded pool of
// reusable timers. Pooled timers are handed out stopped and are reset when
// freed.
package stopwatch
