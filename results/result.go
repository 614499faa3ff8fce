// Package results provides Result, a container that holds exactly one of a
// success value or an error.  A Result is built by one of the constructors
// and is read-only afterwards.
package results

import "errors"

// Result holds either a success value or an error, never both.
// The zero value of a Result is a failure carrying a nil error; use Ok, Err
// or New to construct a valid instance.
type Result[T any] struct {
	val T
	err error
	ok  bool
}

// Ok creates a success Result holding val.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val, ok: true}
}

// Err creates a failure Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// New creates a Result from a conventional (value, error) return pair.
// The Result is a failure iff err is non-nil.
func New[T any](val T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(val)
}

// IsOk reports whether r is a success result.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is a failure result.  It is always the negation
// of IsOk, so the two can never disagree.
func (r Result[T]) IsErr() bool {
	return !r.IsOk()
}

// Unwrap returns the held value.  If r is a failure result Unwrap panics
// with the held error itself, so a caller that recovers sees the original
// error value, not a wrapper.  Guard with IsOk before calling.
func (r Result[T]) Unwrap() T {
	if r.IsErr() {
		panic(r.err)
	}
	return r.val
}

// UnwrapErr returns the held error.  If r is a success result UnwrapErr
// panics with a new generic error, since there is no held error to report.
// Guard with IsErr before calling.
func (r Result[T]) UnwrapErr() error {
	if r.IsOk() {
		panic(errors.New("called UnwrapErr on an ok result"))
	}
	return r.err
}
