package rop

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or a typed nil (pointer, map, slice, chan,
// func or interface).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// MustNotNil panics with an *ArgumentError naming the argument when v is nil.
func MustNotNil(name string, v any) {
	if IsNil(v) {
		panic(NilArgument(name))
	}
}

// GetErrors flattens an errors.Join style error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		if _, rich := err.(*Error); !rich {
			return e.Unwrap()
		}
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, ErrCanceled)
}

func concatReasons(a, b []Reason) []Reason {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]Reason, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
