package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Ensure fails a successful Result with err when condition is false. A failed
// input, or a true condition, returns input unchanged.
func Ensure[T any](ctx context.Context, input rop.Result[T], condition bool, err *rop.Error) rop.Result[T] {
	rop.MustNotNil("err", err)

	if input.IsFailed() || condition {
		return input
	}
	return input.WithError(err)
}

// EnsureFunc is Ensure with the condition computed from the value.
func EnsureFunc[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool, err *rop.Error) rop.Result[T] {
	rop.MustNotNil("predicate", predicate)
	rop.MustNotNil("err", err)

	if input.IsFailed() {
		return input
	}
	return Ensure(ctx, input, predicate(ctx, input.Value()), err)
}

// EnsureMsg is Ensure with the error built by the ErrorFactory of the
// settings in ctx, only when it is needed.
func EnsureMsg[T any](ctx context.Context, input rop.Result[T], condition bool, message string) rop.Result[T] {
	if input.IsFailed() || condition {
		return input
	}
	return input.WithError(rop.SettingsFrom(ctx).ErrorFactory(message))
}

// EnsureNotNil fails a successful Result whose value is nil.
func EnsureNotNil[T any](ctx context.Context, input rop.Result[T], err *rop.Error) rop.Result[T] {
	rop.MustNotNil("err", err)

	if input.IsFailed() {
		return input
	}
	return Ensure(ctx, input, !rop.IsNil(input.Value()), err)
}

// Validate checks the value with a (valid, message) validator.
func Validate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {
	rop.MustNotNil("validate", validate)

	if input.IsFailed() {
		return input
	}
	valid, errMsg := validate(ctx, input.Value())
	return EnsureMsg(ctx, input, valid, errMsg)
}

// ValidateAll runs every validator against the value and collects all their
// reasons. Unlike a chain of Ensure calls it does not stop at the first
// failing validator.
func ValidateAll[T any](ctx context.Context, input rop.Result[T],
	validators ...func(ctx context.Context, in T) rop.Empty) rop.Result[T] {

	if input.IsFailed() || len(validators) == 0 {
		return input
	}

	checks := make([]rop.Empty, 0, len(validators))
	for _, v := range validators {
		rop.MustNotNil("validators", v)
		checks = append(checks, v(ctx, input.Value()))
	}

	combined := Combine(checks...)
	if combined.IsSuccess() {
		return input
	}
	return input.WithReasons(combined.Reasons()...)
}
