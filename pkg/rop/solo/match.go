package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Match collapses the Result into a plain value by calling exactly one of
// the branches.
func Match[T, U any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T) U,
	onFailure func(ctx context.Context, errs []*rop.Error) U) U {
	rop.MustNotNil("onSuccess", onSuccess)
	rop.MustNotNil("onFailure", onFailure)

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errors())
}

// MatchDo is Match for branches without a return value.
func MatchDo[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []*rop.Error)) {
	rop.MustNotNil("onSuccess", onSuccess)
	rop.MustNotNil("onFailure", onFailure)

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
		return
	}
	onFailure(ctx, input.Errors())
}

// Finally hands the whole Result to f regardless of its state.
func Finally[T, U any](ctx context.Context, input rop.Result[T],
	f func(ctx context.Context, r rop.Result[T]) U) U {
	rop.MustNotNil("f", f)
	return f(ctx, input)
}
