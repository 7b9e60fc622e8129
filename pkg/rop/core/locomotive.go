package core

import (
	"context"
	"sync"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Stage is one step of a stream: it turns a single input Result into an
// output Result. Stages are plain synchronous functions; Drive supplies the
// concurrency.
type Stage[In, Out any] func(ctx context.Context, input rop.Result[In]) rop.Result[Out]

// CancellationHandlers are called by Drive once ctx is done.
//
// OnCancel receives the rest of the input stream. OnCancelUnprocessed receives
// an item that was read but not yet processed, OnCancelProcessed an item
// whose output could not be delivered.
type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in rop.Result[In], processed rop.Result[Out], outCh chan<- rop.Result[Out])
}

// Drive is one worker line: it reads inputCh until it is closed, runs stage
// on every item and writes the output to outCh. onSent, if set, is called
// after each delivered output. Drive calls wg.Done when it returns.
func Drive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	stage Stage[In, Out], handlers CancellationHandlers[In, Out],
	onSent func(ctx context.Context, out rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			pr := stage(ctx, in)

			select {
			case outCh <- pr:
				if onSent != nil {
					onSent(ctx, pr)
				}
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}
		}
	}
}

// Start runs lines copies of Drive over inputCh and returns their merged
// output, closed once every line has returned.
func Start[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], stage Stage[In, Out],
	handlers CancellationHandlers[In, Out], onSent func(ctx context.Context, out rop.Result[Out]),
	lines int) <-chan rop.Result[Out] {
	rop.MustNotNil("stage", stage)
	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Drive(ctx, inputCh, out, stage, handlers, onSent, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// DrainHandlers pass every item still in flight on as a canceled failure when
// draining is enabled in ctx (see WithDrainOptions), and drop them otherwise.
// An already processed item is delivered as it is.
func DrainHandlers[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel: func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {
			if !IsDrainEnabled(ctx, true) {
				return
			}
			for in := range inputCh {
				outCh <- CancelResult[In, Out](ctx, in)
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, in rop.Result[In], outCh chan<- rop.Result[Out]) {
			if IsDrainEnabled(ctx, true) {
				outCh <- CancelResult[In, Out](ctx, in)
			}
		},
		OnCancelProcessed: func(ctx context.Context, _ rop.Result[In], processed rop.Result[Out], outCh chan<- rop.Result[Out]) {
			if IsDrainEnabled(ctx, true) {
				outCh <- processed
			}
		},
	}
}

// CancelResult converts an item that was not processed because ctx is done
// into a failure. Its reasons are kept and a canceled error is added unless
// one is already present.
func CancelResult[In, Out any](ctx context.Context, in rop.Result[In]) rop.Result[Out] {
	if in.IsCanceled() {
		return rop.Retype[Out](in)
	}
	return rop.Retype[Out](in.WithError(rop.Canceled(context.Cause(ctx))))
}
