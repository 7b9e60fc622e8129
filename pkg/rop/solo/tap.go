package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Tap runs a side effect on success and returns input unchanged.
func Tap[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {
	rop.MustNotNil("onSuccess", onSuccess)

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TapTry runs a side effect that may fail. On success input is returned
// unchanged; an error or a panic is appended to the input reasons.
func TapTry[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T) error) rop.Result[T] {
	rop.MustNotNil("onSuccess", onSuccess)

	if input.IsFailed() {
		return input
	}
	if caught := catch(ctx, func() error {
		return onSuccess(ctx, input.Value())
	}); caught != nil {
		return input.WithError(caught)
	}
	return input
}

// TapError runs a side effect with the errors of a failed Result and returns
// input unchanged.
func TapError[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, errs []*rop.Error)) rop.Result[T] {
	rop.MustNotNil("onFailure", onFailure)

	if input.IsFailed() {
		onFailure(ctx, input.Errors())
	}
	return input
}

// TapBoth runs exactly one of the side effects depending on the state.
func TapBoth[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, errs []*rop.Error)) rop.Result[T] {
	rop.MustNotNil("onSuccess", onSuccess)
	rop.MustNotNil("onFailure", onFailure)

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Errors())
	}
	return input
}
