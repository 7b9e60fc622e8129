// Package future provides the awaitable used by package async.
//
// A Future is a placeholder for a value produced by another goroutine. It is
// fulfilled exactly once through its Promise and may be awaited any number of
// times, from any number of goroutines.
//
// The producer side typically looks as follows:
//
//	promise, f := future.Create[T]()
//	go func() {
//	   promise.Fulfill(someOperation())
//	}()
//	return f
//
// Spawn does the same and additionally captures a panic of the producer; the
// panic is raised again in every goroutine that awaits the future, so a
// failing producer behaves like a failing synchronous call.
package future

import (
	"context"
	"errors"
)

// ErrAlreadyFulfilled is the panic value of Fulfill and Forward on a promise
// that was already fulfilled.
var ErrAlreadyFulfilled = errors.New("future: promise already fulfilled")

type state[T any] struct {
	done     chan struct{}
	value    T
	panicked bool
	panicVal any
}

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	s *state[T]
}

// Future represents a value that will be available once its Promise is
// fulfilled. The zero Future is invalid; use Create, Immediate or Spawn.
type Future[T any] struct {
	s *state[T]
}

// Create initializes a new Promise and Future pair.
func Create[T any]() (Promise[T], Future[T]) {
	s := &state[T]{done: make(chan struct{})}
	return Promise[T]{s: s}, Future[T]{s: s}
}

// Immediate creates a Future that is already fulfilled with the given value.
func Immediate[T any](value T) Future[T] {
	p, f := Create[T]()
	p.Fulfill(value)
	return f
}

// Spawn runs fn in a new goroutine and returns a Future of its result.
func Spawn[T any](fn func() T) Future[T] {
	p, f := Create[T]()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				p.s.panicVal = rec
				p.s.panicked = true
				close(p.s.done)
			}
		}()
		p.Fulfill(fn())
	}()
	return f
}

// Fulfill makes value available to every awaiting goroutine. Fulfilling a
// promise twice panics with ErrAlreadyFulfilled.
func (p Promise[T]) Fulfill(value T) {
	p.mustBePending()
	p.s.value = value
	close(p.s.done)
}

// Forward fulfills the Promise with the value of f once f is fulfilled. It
// panics with ErrAlreadyFulfilled in the caller when the Promise is already
// fulfilled; the Promise must not be fulfilled by other means afterwards.
func (p Promise[T]) Forward(f Future[T]) {
	p.mustBePending()
	go func() {
		<-f.s.done
		p.s.value, p.s.panicked, p.s.panicVal = f.s.value, f.s.panicked, f.s.panicVal
		close(p.s.done)
	}()
}

func (p Promise[T]) mustBePending() {
	select {
	case <-p.s.done:
		panic(ErrAlreadyFulfilled)
	default:
	}
}

// Done is closed once the Future is fulfilled.
func (f Future[T]) Done() <-chan struct{} {
	return f.s.done
}

// Await blocks until the Future is fulfilled and returns its value. If the
// producer panicked, Await panics with the same value.
func (f Future[T]) Await() T {
	<-f.s.done
	return f.get()
}

// AwaitContext is Await bounded by ctx. It returns ctx.Err() when ctx is done
// before the Future is fulfilled.
func (f Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.s.done:
		return f.get(), nil
	default:
	}

	select {
	case <-f.s.done:
		return f.get(), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f Future[T]) get() T {
	if f.s.panicked {
		panic(f.s.panicVal)
	}
	return f.s.value
}

// Then creates a new Future by applying transform to the value of f once it
// is fulfilled. A panic of f or of transform is carried to the new Future.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	return Spawn(func() B {
		return transform(f.Await())
	})
}
