// Package rop defines the Result type shared by all railway packages.
//
// A Result[T] holds an ordered list of reasons and, when none of them is an
// *Error, a value of type T. Empty (Result[Unit]) is used by operations that
// return no value.
//
// Combinators live in sibling packages:
// - solo: synchronous Bind/Map/Tap/Ensure/Check/Combine/Match and friends
// - tiny: fluent Chain[T] over solo
// - async: the same operations over future.Future results
// - lite: the same operations lifted over channels of results
// - grpcx: projection of failed results onto gRPC statuses
//
// Settings (error factories and the Try catch handler) are carried by the
// context, see WithSettings.
package rop
