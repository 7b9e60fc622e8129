package solo

import (
	"github.com/ib-77/fluentrop/pkg/rop"
)

// Combine aggregates results in input order. The output reasons are the
// concatenation of all input reasons; it succeeds only when every input
// succeeds, and then its value lists the input values in order.
func Combine[T any](results ...rop.Result[T]) rop.Result[[]T] {
	var reasons []rop.Reason
	values := make([]T, 0, len(results))
	failed := false

	for _, r := range results {
		reasons = append(reasons, r.Reasons()...)
		if r.IsFailed() {
			failed = true
			continue
		}
		values = append(values, r.Value())
	}

	if failed {
		return rop.New[[]T](nil, reasons...)
	}
	return rop.New(values, reasons...)
}
