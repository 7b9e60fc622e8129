package lite

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/core"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// Stage turns any operation over a single Result, typically a solo
// combinator with its arguments bound, into a stage for Run.
func Stage[In, Out any](op func(ctx context.Context, input rop.Result[In]) rop.Result[Out]) core.Stage[In, Out] {
	rop.MustNotNil("op", op)
	return core.Stage[In, Out](op)
}

func Bind[In, Out any](onSuccess func(ctx context.Context, r In) rop.Result[Out]) core.Stage[In, Out] {
	rop.MustNotNil("onSuccess", onSuccess)
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, input, onSuccess)
	}
}

func BindTry[In, Out any](onSuccess func(ctx context.Context, r In) rop.Result[Out]) core.Stage[In, Out] {
	rop.MustNotNil("onSuccess", onSuccess)
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.BindTry(ctx, input, onSuccess)
	}
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) core.Stage[In, Out] {
	rop.MustNotNil("onSuccess", onSuccess)
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	}
}

func MapTry[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) core.Stage[In, Out] {
	rop.MustNotNil("onTryExecute", onTryExecute)
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.MapTry(ctx, input, onTryExecute)
	}
}

func Tap[T any](onSuccess func(ctx context.Context, r T)) core.Stage[T, T] {
	rop.MustNotNil("onSuccess", onSuccess)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, input, onSuccess)
	}
}

func TapTry[T any](onSuccess func(ctx context.Context, r T) error) core.Stage[T, T] {
	rop.MustNotNil("onSuccess", onSuccess)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.TapTry(ctx, input, onSuccess)
	}
}

func TapError[T any](onFailure func(ctx context.Context, errs []*rop.Error)) core.Stage[T, T] {
	rop.MustNotNil("onFailure", onFailure)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.TapError(ctx, input, onFailure)
	}
}

// Ensure fails every successful item whose value does not satisfy predicate.
func Ensure[T any](predicate func(ctx context.Context, r T) bool, err *rop.Error) core.Stage[T, T] {
	rop.MustNotNil("predicate", predicate)
	rop.MustNotNil("err", err)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.EnsureFunc(ctx, input, predicate, err)
	}
}

func EnsureNotNil[T any](err *rop.Error) core.Stage[T, T] {
	rop.MustNotNil("err", err)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.EnsureNotNil(ctx, input, err)
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) core.Stage[T, T] {
	rop.MustNotNil("validate", validate)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Validate(ctx, input, validate)
	}
}

func Check[T, U any](onSuccess func(ctx context.Context, r T) rop.Result[U]) core.Stage[T, T] {
	rop.MustNotNil("onSuccess", onSuccess)
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Check(ctx, input, onSuccess)
	}
}
