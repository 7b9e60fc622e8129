package lite

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// FinallyHandlers are the two branches of Match.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, errs []*rop.Error) Out
}

// Match collapses every item of input into a plain value. The output is
// closed after input.
func Match[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {
	rop.MustNotNil("OnSuccess", handlers.OnSuccess)
	rop.MustNotNil("OnFailure", handlers.OnFailure)
	return Finally(ctx, input, func(ctx context.Context, r rop.Result[In]) Out {
		return solo.Match(ctx, r, handlers.OnSuccess, handlers.OnFailure)
	})
}

// Finally hands every item of input to f regardless of its state.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	f func(ctx context.Context, r rop.Result[In]) Out) <-chan Out {
	rop.MustNotNil("input", input)
	rop.MustNotNil("f", f)

	out := make(chan Out)
	go func() {
		defer close(out)
		for in := range input {
			out <- solo.Finally(ctx, in, f)
		}
	}()
	return out
}

// Combine reads input until it is closed and aggregates the items like
// solo.Combine. Items are taken in arrival order, which for more than one
// worker line is not the order of the source values.
func Combine[T any](input <-chan rop.Result[T]) rop.Result[[]T] {
	rop.MustNotNil("input", input)

	var results []rop.Result[T]
	for r := range input {
		results = append(results, r)
	}
	return solo.Combine(results...)
}
