package tiny

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.MapTry(c.ctx, c.res, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Check runs a nested validation of any result type and keeps the value of c
func Check[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[T] {
	return c.next(solo.Check(c.ctx, c.res, onSuccess))
}

// CheckIf is Check run only when condition holds
func CheckIf[T, U any](c Chain[T], condition bool, onSuccess func(context.Context, T) rop.Result[U]) Chain[T] {
	return c.next(solo.CheckIf(c.ctx, c.res, condition, onSuccess))
}

// Match collapses the chain into a final value using solo.Match
func Match[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, []*rop.Error) U) U {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}

// Finally hands the final result to f regardless of its state
func Finally[T, U any](c Chain[T], f func(context.Context, rop.Result[T]) U) U {
	return solo.Finally(c.ctx, c.res, f)
}

// Combine aggregates the results of chains, the context of the first chain
// (or ctx when there is none) is kept.
func Combine[T any](ctx context.Context, chains ...Chain[T]) Chain[[]T] {
	results := make([]rop.Result[T], 0, len(chains))
	for _, ch := range chains {
		results = append(results, ch.res)
	}
	if len(chains) > 0 {
		ctx = chains[0].ctx
	}
	return Chain[[]T]{ctx: ctx, res: solo.Combine(results...)}
}
