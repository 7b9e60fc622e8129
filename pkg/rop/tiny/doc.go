// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// Methods keep the value type and delegate to solo:
// - Bind/BindTry, Map/MapTry, Tap/TapTry/TapError
// - Ensure/EnsureFunc/EnsureMsg/EnsureNotNil/Validate, Check
// - ...If / ...IfFunc conditional variants
// - Or/And, While/RepeatUntil
//
// Free functions switch the value type: Then, ThenTry, Map, Match, Finally
// and Combine.
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability without introducing channels.
package tiny
