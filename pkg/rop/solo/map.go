package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Map transforms the value of a successful Result and keeps its reasons.
// Panics of onSuccess are not recovered, see MapTry.
func Map[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {
	rop.MustNotNil("onSuccess", onSuccess)

	if input.IsFailed() {
		return rop.Retype[Out](input)
	}
	return rop.ToResult(input, onSuccess(ctx, input.Value()))
}

// MapTry is Map for functions returning (Out, error). A returned error or a
// panic is converted by the catch handler into an error appended to the
// input reasons.
func MapTry[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {
	rop.MustNotNil("onTryExecute", onTryExecute)

	if input.IsFailed() {
		return rop.Retype[Out](input)
	}

	var out Out
	if caught := catch(ctx, func() (err error) {
		out, err = onTryExecute(ctx, input.Value())
		return err
	}); caught != nil {
		return rop.Retype[Out](input.WithError(caught))
	}
	return rop.ToResult(input, out)
}
