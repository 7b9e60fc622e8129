package lite

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/core"
)

// Run drives stage over inputCh with the given number of worker lines. A
// non-positive lines falls back to the worker options in ctx, then to one.
func Run[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], stage core.Stage[In, Out],
	lines int) <-chan rop.Result[Out] {
	return RunWithHandlers(ctx, inputCh, stage, core.DrainHandlers[In, Out](), nil, lines)
}

// RunWithHandlers is Run with custom cancellation handling and a callback for
// every delivered output.
func RunWithHandlers[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], stage core.Stage[In, Out],
	handlers core.CancellationHandlers[In, Out], onSent func(ctx context.Context, out rop.Result[Out]),
	lines int) <-chan rop.Result[Out] {
	rop.MustNotNil("inputCh", inputCh)
	if lines < 1 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}
	return core.Start(ctx, inputCh, stage, handlers, onSent, lines)
}
