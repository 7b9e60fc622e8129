package rop

import (
	"errors"
	"slices"
)

// Unit is the value type of results that carry no value.
type Unit struct{}

// Empty is a Result without a meaningful value.
type Empty = Result[Unit]

// Result is the outcome of an operation: a list of reasons and, when no
// reason is an *Error, a value.
//
// The success state is derived from the reasons, there is no separate flag.
// A Result is a value; every operation returns a new Result and never
// modifies the slices of its input.
type Result[T any] struct {
	value   T
	reasons []Reason
}

func Ok() Empty {
	return Empty{}
}

func Success[T any](r T) Result[T] {
	return Result[T]{value: r}
}

// Fail creates a failed Result from one or more errors. It panics when no
// error or a nil error is given.
func Fail[T any](errs ...*Error) Result[T] {
	if len(errs) == 0 {
		panic(NilArgument("errs"))
	}
	reasons := make([]Reason, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			panic(NilArgument("errs"))
		}
		reasons = append(reasons, e)
	}
	return Result[T]{reasons: reasons}
}

// FailMsg creates a failed Result holding a single Error with message.
func FailMsg[T any](message string) Result[T] {
	return Fail[T](NewError(message))
}

// FailErr creates a failed Result from a plain Go error. Joined errors become
// one reason each.
func FailErr[T any](err error) Result[T] {
	MustNotNil("err", err)
	parts := GetErrors(err)
	errs := make([]*Error, 0, len(parts))
	for _, p := range parts {
		errs = append(errs, ErrorFrom(p))
	}
	return Fail[T](errs...)
}

// FromPair converts the usual (value, error) return into a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return FailErr[T](err)
	}
	return Success(v)
}

// New builds a Result from a value and reasons. The value is only reachable
// when no reason is an *Error.
func New[T any](v T, reasons ...Reason) Result[T] {
	for _, r := range reasons {
		MustNotNil("reasons", r)
	}
	return Result[T]{value: v, reasons: concatReasons(nil, reasons)}
}

func (r Result[T]) IsSuccess() bool {
	for _, reason := range r.reasons {
		if _, ok := reason.(*Error); ok {
			return false
		}
	}
	return true
}

func (r Result[T]) IsFailed() bool {
	return !r.IsSuccess()
}

func (r Result[T]) Reasons() []Reason {
	return slices.Clone(r.reasons)
}

// Errors returns the failure-causing reasons in order.
func (r Result[T]) Errors() []*Error {
	var errs []*Error
	for _, reason := range r.reasons {
		if e, ok := reason.(*Error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// Successes returns the informational reasons in order.
func (r Result[T]) Successes() []*Info {
	var ss []*Info
	for _, reason := range r.reasons {
		if s, ok := reason.(*Info); ok {
			ss = append(ss, s)
		}
	}
	return ss
}

// Value returns the value of a successful Result. Accessing the value of a
// failed Result panics with an *AccessError; use ValueOrDefault or Get when
// the state is not known.
func (r Result[T]) Value() T {
	if r.IsFailed() {
		panic(&AccessError{Errors: r.Errors()})
	}
	return r.value
}

func (r Result[T]) ValueOrDefault(def T) T {
	if r.IsFailed() {
		return def
	}
	return r.value
}

// Get returns the value and Err, mirroring the (value, error) convention.
// The value is the zero value when the Result is failed.
func (r Result[T]) Get() (T, error) {
	if err := r.Err(); err != nil {
		var zero T
		return zero, err
	}
	return r.value, nil
}

// Err returns nil for a successful Result, the only error when there is one
// and an errors.Join of all errors otherwise.
func (r Result[T]) Err() error {
	errs := r.Errors()
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	joined := make([]error, 0, len(errs))
	for _, e := range errs {
		joined = append(joined, e)
	}
	return errors.Join(joined...)
}

// HasError reports whether any error, nested ones included, matches pred.
func (r Result[T]) HasError(pred func(e *Error) bool) bool {
	MustNotNil("pred", pred)
	var walk func(errs []*Error) bool
	walk = func(errs []*Error) bool {
		for _, e := range errs {
			if pred(e) || walk(e.reasons) {
				return true
			}
		}
		return false
	}
	return walk(r.Errors())
}

// HasErrorIs reports whether errors.Is(e, target) holds for any error.
func (r Result[T]) HasErrorIs(target error) bool {
	for _, e := range r.Errors() {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}

// IsCanceled reports whether the Result failed because waiting for it was
// interrupted by a context.
func (r Result[T]) IsCanceled() bool {
	return r.HasError(func(e *Error) bool { return IsCancellationError(e.cause) })
}

func (r Result[T]) WithReason(reason Reason) Result[T] {
	MustNotNil("reason", reason)
	return Result[T]{value: r.value, reasons: concatReasons(r.reasons, []Reason{reason})}
}

func (r Result[T]) WithReasons(reasons ...Reason) Result[T] {
	for _, reason := range reasons {
		MustNotNil("reasons", reason)
	}
	return Result[T]{value: r.value, reasons: concatReasons(r.reasons, reasons)}
}

func (r Result[T]) WithError(e *Error) Result[T] {
	MustNotNil("e", e)
	return r.WithReason(e)
}

func (r Result[T]) WithSuccess(message string) Result[T] {
	return r.WithReason(NewInfo(message))
}

// ToEmpty drops the value and keeps the reasons.
func (r Result[T]) ToEmpty() Empty {
	return Retype[Unit](r)
}

// ToResult converts r into a Result[U] with the same reasons. v becomes the
// value when r is successful.
func ToResult[U, T any](r Result[T], v U) Result[U] {
	if r.IsFailed() {
		return Retype[U](r)
	}
	return Result[U]{value: v, reasons: r.reasons}
}

// Retype converts r into a Result[U] with the same reasons and a zero value.
// It is meant for propagating failures across a type change.
func Retype[U, T any](r Result[T]) Result[U] {
	return Result[U]{reasons: r.reasons}
}

// Merge appends the reasons of next to the reasons of r and takes the value
// of next.
func Merge[U, T any](r Result[T], next Result[U]) Result[U] {
	return Result[U]{value: next.value, reasons: concatReasons(r.reasons, next.reasons)}
}
