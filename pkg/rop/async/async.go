package async

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/future"
)

// Future is a result that resolves later.
type Future[T any] = future.Future[rop.Result[T]]

// Go runs f in its own goroutine.
func Go[T any](ctx context.Context, f func(ctx context.Context) rop.Result[T]) Future[T] {
	rop.MustNotNil("f", f)
	return future.Spawn(func() rop.Result[T] { return f(ctx) })
}

// From wraps an available Result.
func From[T any](r rop.Result[T]) Future[T] {
	return future.Immediate(r)
}

// Await waits for input. A done ctx yields a failed Result with a
// rop.Canceled error; a panic of the producer is raised again.
func Await[T any](ctx context.Context, input Future[T]) rop.Result[T] {
	r, err := input.AwaitContext(ctx)
	if err != nil {
		return rop.Fail[T](rop.Canceled(err))
	}
	return r
}

// Then applies a synchronous operation to input once it resolves.
func Then[T, U any](ctx context.Context, input Future[T],
	op func(ctx context.Context, r rop.Result[T]) rop.Result[U]) Future[U] {
	rop.MustNotNil("op", op)
	return future.Spawn(func() rop.Result[U] {
		return op(ctx, Await(ctx, input))
	})
}

// ThenValue is Then for terminal operations that produce a plain value.
func ThenValue[T, U any](ctx context.Context, input Future[T],
	op func(ctx context.Context, r rop.Result[T]) U) future.Future[U] {
	rop.MustNotNil("op", op)
	return future.Spawn(func() U {
		return op(ctx, Await(ctx, input))
	})
}

func awaiting[T, U any](f func(ctx context.Context, r T) Future[U]) func(ctx context.Context, r T) rop.Result[U] {
	rop.MustNotNil("f", f)
	return func(ctx context.Context, r T) rop.Result[U] {
		return Await(ctx, f(ctx, r))
	}
}

// awaitingValue waits for the plain future of f bounded by ctx. A done ctx
// yields a failed Result with a rop.Canceled error.
func awaitingValue[T, U any](f func(ctx context.Context, r T) future.Future[U]) func(ctx context.Context, r T) rop.Result[U] {
	rop.MustNotNil("f", f)
	return func(ctx context.Context, r T) rop.Result[U] {
		v, err := f(ctx, r).AwaitContext(ctx)
		if err != nil {
			return rop.Fail[U](rop.Canceled(err))
		}
		return rop.Success(v)
	}
}
