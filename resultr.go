// Package resultr converts failure-prone callables into Result-returning ones.
// A callable may fail by returning an error, by panicking, or by returning a
// future that eventually fails; in every case the outcome is captured as a
// results.Result instead of propagating to the caller.
//
// Two entry points cover the two call shapes.  Wrap is for synchronous
// callables and returns a Result directly.  WrapFuture is for callables that
// return a futures.Future and returns a future of Result.  Both invoke the
// callable exactly once, eagerly, before any suspension.
package resultr

import (
	"context"
	"fmt"

	"github.com/abevier/resultr/futures"
	"github.com/abevier/resultr/results"
)

// Wrap invokes fn exactly once and converts its outcome into a Result.
// A returned error becomes a failure Result holding that same error.  A panic
// during fn is recovered and normalized with Normalize.  Otherwise the
// returned value becomes a success Result.  Wrap never panics itself.
func Wrap[T any](fn func() (T, error)) (res results.Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = results.Err[T](Normalize(v))
		}
	}()

	val, err := fn()
	if err != nil {
		return results.Err[T](err)
	}
	return results.Ok(val)
}

// WrapFuture invokes fn exactly once and returns a future that fulfills with
// the Result of the computation.  fn must return a non-nil future.
//
// The returned future always completes successfully with a Result; a failure
// of the inner future becomes a failure Result, so callers never need a second
// error-handling layer around the outer future.  If fn itself panics before
// producing a future, the panic is recovered and reported the same way: as an
// already-completed future holding a failure Result.
//
// The context passed to Get on the returned future bounds only the caller's
// wait.  It does not cancel the wrapped computation, which always runs to
// completion or failure.
func WrapFuture[T any](fn func() *futures.Future[T]) *futures.Future[results.Result[T]] {
	out := futures.New[results.Result[T]]()

	f, err := invoke(fn)
	if err != nil {
		out.Complete(results.Err[T](err))
		return out
	}

	go func() {
		val, err := f.Get(context.Background())
		if err != nil {
			out.Complete(results.Err[T](Normalize(err)))
			return
		}
		out.Complete(results.Ok(val))
	}()

	return out
}

// WrapFunc runs fn asynchronously and returns a future that fulfills with the
// Result of the call.  It is a convenience for the common case of wrapping a
// plain (T, error) function without first lifting it into a future.  Unlike
// Wrap and WrapFuture, fn has not necessarily been invoked by the time
// WrapFunc returns.
func WrapFunc[T any](fn func() (T, error)) *futures.Future[results.Result[T]] {
	out := futures.New[results.Result[T]]()

	go func() {
		out.Complete(Wrap(fn))
	}()

	return out
}

// invoke calls fn, recovering a panic into a normalized error.
func invoke[T any](fn func() *futures.Future[T]) (f *futures.Future[T], err error) {
	defer func() {
		if v := recover(); v != nil {
			f = nil
			err = Normalize(v)
		}
	}()

	return fn(), nil
}

// Normalize converts an arbitrary failure payload into an error.  A payload
// that already implements error passes through unchanged.  Any other payload
// is replaced by a new error carrying its string form; the payload itself is
// not preserved, only its text.
func Normalize(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
