// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required argument is missing.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is matched by every [RangeError].
	ErrOutOfRange = errors.New("outside of bounds")
)

// RangeError reports an index, offset or count outside the valid bounds.
// Param names the offending parameter; combined checks use names such as
// "offset+count".
type RangeError struct {
	Param string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s (%d) %s", e.Param, e.Value, ErrOutOfRange)
}

// Unwrap lets errors.Is match [ErrOutOfRange].
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// NotNil fails with [ErrInvalidArgument] when buf is nil.
func NotNil(buf []byte, param string) error {
	if buf == nil {
		return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, param)
	}
	return nil
}

// Segment checks that buf is non-nil and that [offset, offset+count) lies
// within it.
func Segment(buf []byte, offset, count int) error {
	if err := NotNil(buf, "buffer"); err != nil {
		return err
	}
	if offset < 0 {
		return &RangeError{Param: "offset", Value: offset}
	}
	if count < 0 {
		return &RangeError{Param: "count", Value: count}
	}
	if offset+count > len(buf) {
		return &RangeError{Param: "offset+count", Value: offset + count}
	}
	return nil
}

// Index checks 0 <= index < length.
func Index(index, length int) error {
	if index < 0 || index >= length {
		return &RangeError{Param: "index", Value: index}
	}
	return nil
}

// Count checks 0 <= count <= length.
func Count(count, length int) error {
	if count < 0 || count > length {
		return &RangeError{Param: "count", Value: count}
	}
	return nil
}

// IndexCount checks that [index, index+count) lies within length.
func IndexCount(index, count, length int) error {
	if index < 0 || index > length {
		return &RangeError{Param: "index", Value: index}
	}
	if count < 0 || count > length {
		return &RangeError{Param: "count", Value: count}
	}
	if index+count > length {
		return &RangeError{Param: "index+count", Value: index + count}
	}
	return nil
}
