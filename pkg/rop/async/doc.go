// Package async lifts the solo combinators over future.Future results.
//
// A combinator comes in up to three shapes that differ only in which side is
// asynchronous:
// - Bind, Map, Tap...: the input is a Future, the function is synchronous
// - BindAsync, MapAsync...: the input is a Result, the function returns a Future
// - BindFull, MapFull...: both are asynchronous
//
// All of them are built from Then, which applies any synchronous operation to
// a Future once it resolves, and from awaiting, which turns an asynchronous
// function into a synchronous one. Anything solo offers, including the
// ...If variants, can therefore be used asynchronously through Then.
//
// The library starts one goroutine per combinator, which waits for its inputs
// in sequence. Only Combine waits for several futures concurrently. When ctx
// is done before an input resolves, the output is a failed Result holding a
// rop.Canceled error.
package async
