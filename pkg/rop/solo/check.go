package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Check runs a nested validation that must succeed but whose value is
// discarded. onSuccess runs through BindTry, so its panics become errors.
// When it fails the output carries the reasons of input followed by its
// reasons; otherwise input is returned unchanged.
func Check[T, U any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T) rop.Result[U]) rop.Result[T] {
	rop.MustNotNil("onSuccess", onSuccess)

	if input.IsFailed() {
		return input
	}

	checked := BindTry(ctx, input, onSuccess)
	if checked.IsFailed() {
		return rop.Retype[T](checked)
	}
	return input
}
