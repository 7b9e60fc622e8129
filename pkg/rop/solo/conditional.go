package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

func when[T any](condition bool, input rop.Result[T], op func() rop.Result[T]) rop.Result[T] {
	if !condition {
		return input
	}
	return op()
}

func whenValue[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool, op func() rop.Result[T]) rop.Result[T] {
	rop.MustNotNil("predicate", predicate)

	if input.IsFailed() || !predicate(ctx, input.Value()) {
		return input
	}
	return op()
}

func BindIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onSuccess func(ctx context.Context, r T) rop.Result[T]) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return Bind(ctx, input, onSuccess) })
}

func BindIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onSuccess func(ctx context.Context, r T) rop.Result[T]) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return Bind(ctx, input, onSuccess) })
}

func BindTryIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onSuccess func(ctx context.Context, r T) rop.Result[T]) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return BindTry(ctx, input, onSuccess) })
}

func BindTryIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onSuccess func(ctx context.Context, r T) rop.Result[T]) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return BindTry(ctx, input, onSuccess) })
}

func MapIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onSuccess func(ctx context.Context, r T) T) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return Map(ctx, input, onSuccess) })
}

func MapIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onSuccess func(ctx context.Context, r T) T) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return Map(ctx, input, onSuccess) })
}

func MapTryIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onTryExecute func(ctx context.Context, r T) (T, error)) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return MapTry(ctx, input, onTryExecute) })
}

func MapTryIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onTryExecute func(ctx context.Context, r T) (T, error)) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return MapTry(ctx, input, onTryExecute) })
}

func TapIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return Tap(ctx, input, onSuccess) })
}

func TapIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return Tap(ctx, input, onSuccess) })
}

func TapTryIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onSuccess func(ctx context.Context, r T) error) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return TapTry(ctx, input, onSuccess) })
}

func TapTryIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onSuccess func(ctx context.Context, r T) error) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return TapTry(ctx, input, onSuccess) })
}

func TapErrorIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	onFailure func(ctx context.Context, errs []*rop.Error)) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return TapError(ctx, input, onFailure) })
}

// TapErrorIfFunc evaluates predicate against the errors of a failed Result.
func TapErrorIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, errs []*rop.Error) bool,
	onFailure func(ctx context.Context, errs []*rop.Error)) rop.Result[T] {
	rop.MustNotNil("predicate", predicate)

	if input.IsSuccess() || !predicate(ctx, input.Errors()) {
		return input
	}
	return TapError(ctx, input, onFailure)
}

func EnsureIf[T any](ctx context.Context, input rop.Result[T], condition bool,
	ensure bool, err *rop.Error) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return Ensure(ctx, input, ensure, err) })
}

func EnsureIfFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	ensure func(ctx context.Context, r T) bool, err *rop.Error) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return EnsureFunc(ctx, input, ensure, err) })
}

func CheckIf[T, U any](ctx context.Context, input rop.Result[T], condition bool,
	onSuccess func(ctx context.Context, r T) rop.Result[U]) rop.Result[T] {
	return when(condition, input, func() rop.Result[T] { return Check(ctx, input, onSuccess) })
}

func CheckIfFunc[T, U any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	onSuccess func(ctx context.Context, r T) rop.Result[U]) rop.Result[T] {
	return whenValue(ctx, input, predicate, func() rop.Result[T] { return Check(ctx, input, onSuccess) })
}
