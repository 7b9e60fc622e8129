package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Bind chains a Result-returning function. A failed input is propagated
// without calling onSuccess. Otherwise the output carries the reasons of the
// input followed by the reasons of onSuccess, so a failing onSuccess turns
// the chain into a failure.
func Bind[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {
	rop.MustNotNil("onSuccess", onSuccess)

	if input.IsFailed() {
		return rop.Retype[Out](input)
	}
	return rop.Merge(input, onSuccess(ctx, input.Value()))
}

// BindTry is Bind with panics of onSuccess converted into an error reason
// appended to the input reasons.
func BindTry[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {
	rop.MustNotNil("onSuccess", onSuccess)

	if input.IsFailed() {
		return rop.Retype[Out](input)
	}

	var next rop.Result[Out]
	if caught := catch(ctx, func() error {
		next = onSuccess(ctx, input.Value())
		return nil
	}); caught != nil {
		return rop.Retype[Out](input.WithError(caught))
	}
	return rop.Merge(input, next)
}
