package rop

import (
	"maps"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Reason is anything attached to a Result that explains how it came to be.
// Only *Error reasons make a Result failed; every other reason is informational.
type Reason interface {
	// Message returns the human-readable text of the reason
	Message() string
	// Metadata returns a copy of the key/value payload attached to the reason
	Metadata() map[string]any
}

// Error is a failure-causing reason.
//
// An Error carries a message, an optional underlying cause, an optional
// metadata map and an optional list of nested errors (for aggregation).
// All With* helpers return a shallow copy, the receiver is never modified.
type Error struct {
	id        uuid.UUID
	createdAt time.Time
	message   string
	cause     error
	metadata  map[string]any
	reasons   []*Error
}

// NewError creates an Error with the given message.
func NewError(message string) *Error {
	return &Error{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		message:   message,
	}
}

// NewExceptionalError creates an Error that wraps err as its cause. When
// message is empty the message of err is used.
func NewExceptionalError(message string, err error) *Error {
	if message == "" && err != nil {
		message = err.Error()
	}
	e := NewError(message)
	e.cause = err
	return e
}

// ErrorFrom returns err itself when it already is an *Error, otherwise a new
// exceptional Error wrapping it.
func ErrorFrom(err error) *Error {
	if IsNil(err) {
		panic(NilArgument("err"))
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return NewExceptionalError("", err)
}

func (e *Error) Id() uuid.UUID {
	return e.id
}

func (e *Error) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Cause returns the wrapped underlying error, if any.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Metadata() map[string]any {
	return maps.Clone(e.metadata)
}

// Reasons returns the nested errors that caused e.
func (e *Error) Reasons() []*Error {
	return append([]*Error(nil), e.reasons...)
}

// Unwrap exposes the cause and the nested errors to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, len(e.reasons)+1)
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	for _, r := range e.reasons {
		errs = append(errs, r)
	}
	return errs
}

func (e *Error) WithMetadata(key string, value any) *Error {
	cp := *e
	m := make(map[string]any, len(e.metadata)+1)
	maps.Copy(m, e.metadata)
	m[key] = value
	cp.metadata = m
	return &cp
}

// WithMetadataMap merges kv into a copy of the metadata, kv wins on conflicts.
func (e *Error) WithMetadataMap(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(e.metadata)+len(kv))
	maps.Copy(m, e.metadata)
	maps.Copy(m, kv)
	cp.metadata = m
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.cause = err
	return &cp
}

// CausedBy returns a copy of e with errs appended to its nested reasons.
func (e *Error) CausedBy(errs ...*Error) *Error {
	if len(errs) == 0 {
		return e
	}
	for i, n := range errs {
		if n == nil {
			panic(NilArgument("errs[" + strconv.Itoa(i) + "]"))
		}
	}
	cp := *e
	cp.reasons = append(append(make([]*Error, 0, len(e.reasons)+len(errs)), e.reasons...), errs...)
	return &cp
}

// Info is an informational reason. It never makes a Result fail.
type Info struct {
	message  string
	metadata map[string]any
}

func NewInfo(message string) *Info {
	return &Info{message: message}
}

func (s *Info) Message() string {
	return s.message
}

func (s *Info) Metadata() map[string]any {
	return maps.Clone(s.metadata)
}

func (s *Info) WithMetadata(key string, value any) *Info {
	cp := *s
	m := make(map[string]any, len(s.metadata)+1)
	maps.Copy(m, s.metadata)
	m[key] = value
	cp.metadata = m
	return &cp
}
