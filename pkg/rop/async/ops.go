package async

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/future"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

func Bind[In, Out any](ctx context.Context, input Future[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) Future[Out] {
	rop.MustNotNil("onSuccess", onSuccess)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, r, onSuccess)
	})
}

func BindAsync[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Future[Out]) Future[Out] {
	return BindFull(ctx, From(input), onSuccess)
}

func BindFull[In, Out any](ctx context.Context, input Future[In],
	onSuccess func(ctx context.Context, r In) Future[Out]) Future[Out] {
	return Bind(ctx, input, awaiting(onSuccess))
}

func BindTry[In, Out any](ctx context.Context, input Future[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) Future[Out] {
	rop.MustNotNil("onSuccess", onSuccess)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.BindTry(ctx, r, onSuccess)
	})
}

// BindTryFull also absorbs a panic of the future returned by onSuccess.
func BindTryFull[In, Out any](ctx context.Context, input Future[In],
	onSuccess func(ctx context.Context, r In) Future[Out]) Future[Out] {
	return BindTry(ctx, input, awaiting(onSuccess))
}

func Map[In, Out any](ctx context.Context, input Future[In],
	onSuccess func(ctx context.Context, r In) Out) Future[Out] {
	rop.MustNotNil("onSuccess", onSuccess)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, r, onSuccess)
	})
}

func MapAsync[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) future.Future[Out]) Future[Out] {
	return MapFull(ctx, From(input), onSuccess)
}

func MapFull[In, Out any](ctx context.Context, input Future[In],
	onSuccess func(ctx context.Context, r In) future.Future[Out]) Future[Out] {
	return Bind(ctx, input, awaitingValue(onSuccess))
}

func MapTry[In, Out any](ctx context.Context, input Future[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Future[Out] {
	rop.MustNotNil("onTryExecute", onTryExecute)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.MapTry(ctx, r, onTryExecute)
	})
}

func Tap[T any](ctx context.Context, input Future[T], onSuccess func(ctx context.Context, r T)) Future[T] {
	rop.MustNotNil("onSuccess", onSuccess)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, r, onSuccess)
	})
}

// TapAsync waits for the side effect before passing input on. If ctx ends
// first the output fails with a rop.Canceled error.
func TapAsync[T any](ctx context.Context, input Future[T],
	onSuccess func(ctx context.Context, r T) future.Future[rop.Unit]) Future[T] {
	wait := awaitingValue(onSuccess)
	return Bind(ctx, input, func(ctx context.Context, r T) rop.Result[T] {
		return rop.ToResult(wait(ctx, r), r)
	})
}

func TapTry[T any](ctx context.Context, input Future[T], onSuccess func(ctx context.Context, r T) error) Future[T] {
	rop.MustNotNil("onSuccess", onSuccess)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.TapTry(ctx, r, onSuccess)
	})
}

func TapError[T any](ctx context.Context, input Future[T],
	onFailure func(ctx context.Context, errs []*rop.Error)) Future[T] {
	rop.MustNotNil("onFailure", onFailure)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.TapError(ctx, r, onFailure)
	})
}

func Ensure[T any](ctx context.Context, input Future[T], condition bool, err *rop.Error) Future[T] {
	rop.MustNotNil("err", err)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Ensure(ctx, r, condition, err)
	})
}

func EnsureFunc[T any](ctx context.Context, input Future[T],
	predicate func(ctx context.Context, r T) bool, err *rop.Error) Future[T] {
	rop.MustNotNil("predicate", predicate)
	rop.MustNotNil("err", err)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.EnsureFunc(ctx, r, predicate, err)
	})
}

// EnsureAsync is EnsureFunc with a predicate answered asynchronously. If ctx
// ends before the answer the output fails with a rop.Canceled error.
func EnsureAsync[T any](ctx context.Context, input Future[T],
	predicate func(ctx context.Context, r T) future.Future[bool], err *rop.Error) Future[T] {
	rop.MustNotNil("err", err)
	answer := awaitingValue(predicate)
	return Bind(ctx, input, func(ctx context.Context, r T) rop.Result[T] {
		ok := answer(ctx, r)
		if ok.IsFailed() {
			return rop.Retype[T](ok)
		}
		return solo.Ensure(ctx, rop.Success(r), ok.Value(), err)
	})
}

func EnsureIf[T any](ctx context.Context, input Future[T], condition bool, ensure bool, err *rop.Error) Future[T] {
	rop.MustNotNil("err", err)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.EnsureIf(ctx, r, condition, ensure, err)
	})
}

func Check[T, U any](ctx context.Context, input Future[T],
	onSuccess func(ctx context.Context, r T) rop.Result[U]) Future[T] {
	rop.MustNotNil("onSuccess", onSuccess)
	return Then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Check(ctx, r, onSuccess)
	})
}

func CheckFull[T, U any](ctx context.Context, input Future[T],
	onSuccess func(ctx context.Context, r T) Future[U]) Future[T] {
	return Check(ctx, input, awaiting(onSuccess))
}

func Match[T, U any](ctx context.Context, input Future[T],
	onSuccess func(ctx context.Context, r T) U,
	onFailure func(ctx context.Context, errs []*rop.Error) U) future.Future[U] {
	rop.MustNotNil("onSuccess", onSuccess)
	rop.MustNotNil("onFailure", onFailure)
	return ThenValue(ctx, input, func(ctx context.Context, r rop.Result[T]) U {
		return solo.Match(ctx, r, onSuccess, onFailure)
	})
}

func Finally[T, U any](ctx context.Context, input Future[T],
	f func(ctx context.Context, r rop.Result[T]) U) future.Future[U] {
	rop.MustNotNil("f", f)
	return ThenValue(ctx, input, f)
}
