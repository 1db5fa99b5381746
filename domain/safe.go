package domain

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
)

// UnwrapError reports an expectation that did not hold, with the location of the check.
type UnwrapError struct {
	File string
	Line int
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("%v at %v:%v", ErrorFailedUnwrap.Error(), e.File, e.Line)
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrorFailedUnwrap
}

// SafeUnwrap returns value when ok holds, and a located FailedUnwrap error otherwise.
func SafeUnwrap[T any](value T, ok bool) (T, error) {
	if !ok {
		var zero T
		return zero, unwrapFailed(2)
	}
	return value, nil
}

// SafeUnwrapErr is SafeUnwrap for (value, error) pairs. The underlying error is logged, not returned.
func SafeUnwrapErr[T any](value T, err error) (T, error) {
	if err != nil {
		log.Printf("🔴 unwrapping - %v\n", err.Error())
		var zero T
		return zero, unwrapFailed(2)
	}
	return value, nil
}

func unwrapFailed(skip int) error {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "unknown"
	}
	file = filepath.Base(file)

	log.Printf("🔴 unwrap error thrown at %v:%v\n", file, line)
	return &UnwrapError{File: file, Line: line}
}

// CheckedSub subtracts b from a, reporting false on underflow.
func CheckedSub(a, b uint8) (uint8, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// CheckedAdd adds a and b, reporting false on overflow.
func CheckedAdd(a, b uint8) (uint8, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
