package core

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// EmitHandlers observe how far Emit got before the context ended.
type EmitHandlers[T any] struct {
	OnStartFail func(ctx context.Context, values []T)
	OnSent      func(ctx context.Context, value T)
	OnBreak     func(ctx context.Context, rest []T)
}

// Emit sends values, in order, on a new channel that is closed after the last
// one or as soon as ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan T {
	return emit(ctx, EmitHandlers[T]{}, func(v T) T { return v }, values)
}

// EmitResults is Emit with every value wrapped in a successful Result.
func EmitResults[T any](ctx context.Context, values ...T) <-chan rop.Result[T] {
	return EmitResultsWithHandlers(ctx, EmitHandlers[T]{}, values...)
}

func EmitResultsWithHandlers[T any](ctx context.Context, handlers EmitHandlers[T], values ...T) <-chan rop.Result[T] {
	return emit(ctx, handlers, rop.Success[T], values)
}

func emit[T, E any](ctx context.Context, handlers EmitHandlers[T], wrap func(T) E, values []T) <-chan E {
	out := make(chan E)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case out <- wrap(v):
				if handlers.OnSent != nil {
					handlers.OnSent(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return out
}

// Collect reads ch until it is closed and returns the values in arrival
// order. Every stream built by this module is closed by its producer, also
// after cancellation, so Collect takes no context.
func Collect[T any](ch <-chan T) []T {
	res := make([]T, 0)
	for v := range ch {
		res = append(res, v)
	}
	return res
}

// First returns the first value of ch, or defaultV if ch is closed empty or
// ctx is done first. The rest of ch is discarded in the background so that
// its producers can finish.
func First[T any](ctx context.Context, ch <-chan T, defaultV T) T {
	select {
	case v, ok := <-ch:
		if !ok {
			return defaultV
		}
		go discard(ch)
		return v
	case <-ctx.Done():
		go discard(ch)
		return defaultV
	}
}

func discard[T any](ch <-chan T) {
	for range ch {
	}
}
