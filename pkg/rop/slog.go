package rop

import (
	"log/slog"
	"sort"
	"strconv"
)

// LogValue renders the error as a structured group for log/slog.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("id", e.id.String()),
		slog.String("message", e.message),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	if len(e.metadata) > 0 {
		keys := make([]string, 0, len(e.metadata))
		for k := range e.metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		meta := make([]any, 0, len(keys))
		for _, k := range keys {
			meta = append(meta, slog.Any(k, e.metadata[k]))
		}
		attrs = append(attrs, slog.Group("metadata", meta...))
	}
	for i, n := range e.reasons {
		attrs = append(attrs, slog.Any("reason_"+strconv.Itoa(i), n))
	}
	return slog.GroupValue(attrs...)
}

// LogValue renders the result state and its errors for log/slog. The value
// itself is not logged.
func (r Result[T]) LogValue() slog.Value {
	errs := r.Errors()
	attrs := []slog.Attr{
		slog.Bool("success", len(errs) == 0),
		slog.Int("reasons", len(r.reasons)),
	}
	for i, e := range errs {
		attrs = append(attrs, slog.Any("error_"+strconv.Itoa(i), e))
	}
	return slog.GroupValue(attrs...)
}
