// File: promise/chain.go
// Author: momentics <momentics@gmail.com>
//
// Continuation chaining: Then, ThenFuture (flattening), Catch.

package promise

// Then attaches fn as f's continuation and returns a future for fn's
// result. fn runs synchronously when f resolves; a non-nil error return
// rejects the returned future. If f rejects, fn is skipped and the
// rejection propagates to the returned future unchanged.
//
// Then consumes f's single continuation slot. Callers that need further
// chaining chain off the returned future.
func Then[T, R any](f Future[T], fn func(T) (R, error)) Future[R] {
	next := New[R]()
	f.s.attach(
		func(v T) {
			r, err := fn(v)
			if err != nil {
				next.Reject(err)
				return
			}
			next.Resolve(r)
		},
		func(err error) {
			next.Reject(err)
		},
	)
	return next.Future()
}

// ThenFuture is Then for continuations that themselves return a Future.
// The chain flattens: the returned future settles with the inner future's
// result once the inner future settles, never with the Future itself.
func ThenFuture[T, R any](f Future[T], fn func(T) (Future[R], error)) Future[R] {
	next := New[R]()
	f.s.attach(
		func(v T) {
			inner, err := fn(v)
			if err != nil {
				next.Reject(err)
				return
			}
			inner.s.attach(
				func(r R) { next.Resolve(r) },
				func(err error) { next.Reject(err) },
			)
		},
		func(err error) {
			next.Reject(err)
		},
	)
	return next.Future()
}

// Then is the same-type convenience form of the package-level Then.
func (f Future[T]) Then(fn func(T) (T, error)) Future[T] {
	return Then(f, fn)
}

// Catch intercepts a rejection. fn receives the error and may recover by
// returning a substitute value, or re-reject by returning an error. A
// resolved f passes through untouched.
func (f Future[T]) Catch(fn func(error) (T, error)) Future[T] {
	next := New[T]()
	f.s.attach(
		func(v T) { next.Resolve(v) },
		func(err error) {
			v, err2 := fn(err)
			if err2 != nil {
				next.Reject(err2)
				return
			}
			next.Resolve(v)
		},
	)
	return next.Future()
}

// Resolved returns a future that is already resolved with v.
func Resolved[T any](v T) Future[T] {
	p := New[T]()
	p.Resolve(v)
	return p.Future()
}

// Rejected returns a future that is already rejected with err.
func Rejected[T any](err error) Future[T] {
	p := New[T]()
	p.Reject(err)
	return p.Future()
}
