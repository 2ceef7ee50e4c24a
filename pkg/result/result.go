// Package result provides the return type for operations whose failure is an
// expected outcome rather than a contract violation.
//
// A Result holds either a value or an error, never both. Callers check IsOk (or
// the bool from Value) before using the value.
package result

import "fmt"

type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps an error. A nil err is a programming mistake and panics, since a
// failed Result must always explain itself.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the payload and true on success, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the pair in conventional Go order.
func (r Result[T]) Unwrap() (T, error) {
	v, _ := r.Value()
	return v, r.err
}

// MustValue returns the payload or panics with the failure.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: MustValue on failed result: %v", r.err))
	}
	return r.value
}
