// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels; async and lite lift them over futures and
// channels.
//
// Highlights:
// - Succeed/Fail/FailMsg/Try: construct Result[T]
// - Bind/BindTry: chain Result-returning functions
// - Map/MapTry: transform successful values
// - Tap/TapTry/TapError/TapBoth: side-effect helpers
// - Ensure/EnsureFunc/EnsureMsg/EnsureNotNil/Validate/ValidateAll: guards
// - Check: nested validation keeping the original value
// - Combine: aggregate many results into one
// - Match/MatchDo/Finally: reduce to a concrete value
//
// Every guarded operation has an ...If sibling taking a precomputed bool and
// an ...IfFunc sibling taking a predicate over the value. When the condition
// does not hold the input is returned unchanged.
//
// Only the Try operations recover panics and absorb returned errors, using
// the catch handler of the rop.Settings carried by the context.
package solo
