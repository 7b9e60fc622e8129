package tiny

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) next(res rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: res}
}

// Bind composes functions that already return rop.Result[T]
func (c Chain[T]) Bind(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.next(solo.Bind(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) BindTry(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.next(solo.BindTry(c.ctx, c.res, onSuccess))
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.next(solo.Map(c.ctx, c.res, onSuccess))
}

// MapTry composes functions that return (T, error), like repo calls
func (c Chain[T]) MapTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.next(solo.MapTry(c.ctx, c.res, try))
}

func (c Chain[T]) Tap(onSuccess func(ctx context.Context, t T)) Chain[T] {
	return c.next(solo.Tap(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) TapTry(onSuccess func(ctx context.Context, t T) error) Chain[T] {
	return c.next(solo.TapTry(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) TapError(onFailure func(ctx context.Context, errs []*rop.Error)) Chain[T] {
	return c.next(solo.TapError(c.ctx, c.res, onFailure))
}

func (c Chain[T]) Ensure(condition bool, err *rop.Error) Chain[T] {
	return c.next(solo.Ensure(c.ctx, c.res, condition, err))
}

func (c Chain[T]) EnsureFunc(predicate func(ctx context.Context, t T) bool, err *rop.Error) Chain[T] {
	return c.next(solo.EnsureFunc(c.ctx, c.res, predicate, err))
}

func (c Chain[T]) EnsureMsg(condition bool, message string) Chain[T] {
	return c.next(solo.EnsureMsg(c.ctx, c.res, condition, message))
}

func (c Chain[T]) EnsureNotNil(err *rop.Error) Chain[T] {
	return c.next(solo.EnsureNotNil(c.ctx, c.res, err))
}

func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (bool, string)) Chain[T] {
	return c.next(solo.Validate(c.ctx, c.res, validate))
}

// Check runs a nested validation and keeps the current value. Use the free
// function Check for a validation that returns a value.
func (c Chain[T]) Check(onSuccess func(ctx context.Context, t T) rop.Empty) Chain[T] {
	return c.next(solo.Check(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) BindIf(condition bool, onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.next(solo.BindIf(c.ctx, c.res, condition, onSuccess))
}

func (c Chain[T]) BindIfFunc(predicate func(ctx context.Context, t T) bool,
	onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.next(solo.BindIfFunc(c.ctx, c.res, predicate, onSuccess))
}

func (c Chain[T]) MapIf(condition bool, onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.next(solo.MapIf(c.ctx, c.res, condition, onSuccess))
}

func (c Chain[T]) MapIfFunc(predicate func(ctx context.Context, t T) bool,
	onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.next(solo.MapIfFunc(c.ctx, c.res, predicate, onSuccess))
}

func (c Chain[T]) TapIf(condition bool, onSuccess func(ctx context.Context, t T)) Chain[T] {
	return c.next(solo.TapIf(c.ctx, c.res, condition, onSuccess))
}

func (c Chain[T]) TapIfFunc(predicate func(ctx context.Context, t T) bool,
	onSuccess func(ctx context.Context, t T)) Chain[T] {
	return c.next(solo.TapIfFunc(c.ctx, c.res, predicate, onSuccess))
}

func (c Chain[T]) EnsureIf(condition bool, ensure bool, err *rop.Error) Chain[T] {
	return c.next(solo.EnsureIf(c.ctx, c.res, condition, ensure, err))
}

func (c Chain[T]) EnsureIfFunc(predicate func(ctx context.Context, t T) bool,
	ensure func(ctx context.Context, t T) bool, err *rop.Error) Chain[T] {
	return c.next(solo.EnsureIfFunc(c.ctx, c.res, predicate, ensure, err))
}

// CheckIf is Check run only when condition holds. See the free function
// CheckIf for a validation that returns a value.
func (c Chain[T]) CheckIf(condition bool, onSuccess func(ctx context.Context, t T) rop.Empty) Chain[T] {
	return c.next(solo.CheckIf(c.ctx, c.res, condition, onSuccess))
}

// RepeatUntil applies onSuccess at least once and keeps going while the
// chain succeeds and until holds for the new value.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailed() {
		return c
	}

	for {
		c = c.Bind(onSuccess)

		if c.res.IsFailed() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and while holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Bind(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or c when all of them failed.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailed() {
			return ch
		}
		last = ch
	}
	return last
}

// Match collapses the chain to a value of the same type
func (c Chain[T]) Match(onSuccess func(ctx context.Context, t T) T,
	onFailure func(ctx context.Context, errs []*rop.Error) T) T {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}
