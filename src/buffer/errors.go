// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package buffer

import "github.com/H0llyW00dzZ/binspan/src/internal/verify"

var (
	// ErrInvalidArgument is returned when a required buffer is nil.
	ErrInvalidArgument = verify.ErrInvalidArgument
	// ErrOutOfRange is matched by every [RangeError].
	ErrOutOfRange = verify.ErrOutOfRange
)

// RangeError reports an index, offset or count outside the span or its
// backing array. Param names the parameter, for example "index" or
// "offset+count".
type RangeError = verify.RangeError
