// Package lite lifts the solo combinators over channels of Results.
//
// A pipeline is a chain of Run calls, each driving one stage over the stream
// produced by the previous one with a fixed number of worker lines:
//
//	out := lite.Finally(ctx,
//		lite.Run(ctx,
//			lite.Run(ctx, core.EmitResults(ctx, urls...), lite.Validate(validateURL), 2),
//			lite.MapTry(fetchTitle), 4),
//		func(ctx context.Context, r rop.Result[string]) string { ... })
//
// Every stream closes once its input is exhausted, also after cancellation.
// By default items still in flight when the context ends are passed on as
// canceled failures (see core.WithDrainOptions), so that each input yields
// exactly one output. Output order follows completion, not input order.
package lite
