package rop

// Outcome is the type-erased view of a Result, implemented by every Result[T].
// It lets adapters inspect results without knowing the value type.
type Outcome interface {
	// IsSuccess returns true when no reason is an *Error
	IsSuccess() bool
	// IsFailed returns true when at least one reason is an *Error
	IsFailed() bool
	// Reasons returns all reasons in order
	Reasons() []Reason
	// Errors returns the failure-causing reasons in order
	Errors() []*Error
}

// ValueProvider extends Outcome with access to the value
type ValueProvider[T any] interface {
	Outcome
	// Value returns the value or panics on a failed result
	Value() T
	// ValueOrDefault returns the value or def on a failed result
	ValueOrDefault(def T) T
}

var (
	_ Outcome            = Empty{}
	_ ValueProvider[int] = Result[int]{}
)
