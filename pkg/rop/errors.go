package rop

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAccess = errors.New("rop: value of a failed result accessed")
	ErrNilArgument   = errors.New("rop: required argument is nil")
	ErrCanceled      = errors.New("rop: operation canceled")
)

// AccessError is the panic value raised by Result.Value on a failed result.
type AccessError struct {
	Errors []*Error
}

func (e *AccessError) Error() string {
	if len(e.Errors) == 0 {
		return ErrInvalidAccess.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidAccess, e.Errors[0].Message())
}

func (e *AccessError) Unwrap() error {
	return ErrInvalidAccess
}

// ArgumentError is the panic value raised when a required argument is
// missing. It marks a programmer error, never a domain failure.
type ArgumentError struct {
	Name string
}

func NilArgument(name string) *ArgumentError {
	return &ArgumentError{Name: name}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNilArgument, e.Name)
}

func (e *ArgumentError) Unwrap() error {
	return ErrNilArgument
}

// PanicError carries a value recovered from a panic inside a Try combinator.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Canceled builds the Error used when waiting for a result was interrupted by
// the context. It wraps both ErrCanceled and cause.
func Canceled(cause error) *Error {
	wrapped := ErrCanceled
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrCanceled, cause)
	}
	return NewExceptionalError(ErrCanceled.Error(), wrapped).WithMetadata("canceled", true)
}
