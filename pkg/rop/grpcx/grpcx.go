// Package grpcx projects failed Results onto gRPC statuses and back.
//
// Every error of a Result becomes one errdetails.ErrorInfo detail whose
// metadata holds the error message and the stringified error metadata. The
// status code is taken from the MetadataCode entry of the first error that
// has one, falling back to Canceled for canceled results and to the default
// code otherwise.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/ib-77/fluentrop/pkg/rop"
)

const (
	// MetadataCode selects the gRPC code of an error. Accepted values are a
	// valid codes.Code, an int in its range or a code name such as "NOT_FOUND".
	MetadataCode = "grpc_code"
	// MetadataReason becomes the Reason of the ErrorInfo detail.
	MetadataReason = "reason"

	messageKey    = "message"
	defaultReason = "ROP_ERROR"
)

type options struct {
	code   gcodes.Code
	domain string
}

type Option func(*options)

// WithDefaultCode sets the code used when no error names one. Defaults to
// codes.Unknown.
func WithDefaultCode(c gcodes.Code) Option {
	return func(o *options) { o.code = c }
}

// WithDomain sets the Domain of every ErrorInfo detail.
func WithDomain(domain string) Option {
	return func(o *options) { o.domain = domain }
}

// Status converts r into a gRPC status. A successful r yields codes.OK.
func Status(r rop.Outcome, opts ...Option) *gstatus.Status {
	rop.MustNotNil("r", r)
	if r.IsSuccess() {
		return gstatus.New(gcodes.OK, "")
	}

	o := options{code: gcodes.Unknown}
	for _, opt := range opts {
		opt(&o)
	}

	errs := r.Errors()
	st := gstatus.New(code(r, errs, o.code), message(errs))

	details := make([]protoadapt.MessageV1, 0, len(errs))
	for _, e := range errs {
		details = append(details, errorInfo(e, o.domain))
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st
	}
	return withDetails
}

// Err is Status(r, opts...).Err(); it is nil for a successful r.
func Err(r rop.Outcome, opts ...Option) error {
	return Status(r, opts...).Err()
}

// FromStatus converts st back into a Result. Every ErrorInfo detail becomes
// one error; a status without details becomes a single error carrying the
// status message.
func FromStatus[T any](st *gstatus.Status) rop.Result[T] {
	if st == nil || st.Code() == gcodes.OK {
		var zero T
		return rop.Success(zero)
	}

	var errs []*rop.Error
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		errs = append(errs, fromErrorInfo(info, st))
	}

	if len(errs) == 0 {
		errs = append(errs, rop.NewExceptionalError(st.Message(), st.Err()).
			WithMetadata(MetadataCode, st.Code()))
	}
	return rop.Fail[T](errs...)
}

// FromError converts an error returned by a gRPC call into a Result. A nil
// err is a success and an error that carries no status is kept as it is.
func FromError[T any](err error) rop.Result[T] {
	if err == nil {
		var zero T
		return rop.Success(zero)
	}
	if st, ok := gstatus.FromError(err); ok {
		return FromStatus[T](st)
	}
	return rop.FailErr[T](err)
}

// UnaryServerInterceptor converts *rop.Error values returned by handlers
// into statuses. Other errors are returned as they are.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var re *rop.Error
		if !errors.As(err, &re) {
			return nil, err
		}
		return nil, Err(rop.Fail[rop.Unit](re), opts...)
	}
}

func code(r rop.Outcome, errs []*rop.Error, def gcodes.Code) gcodes.Code {
	for _, e := range errs {
		if c, ok := parseCode(e.Metadata()[MetadataCode]); ok {
			return c
		}
	}
	if rr, ok := r.(interface{ IsCanceled() bool }); ok && rr.IsCanceled() {
		return gcodes.Canceled
	}
	return def
}

func parseCode(v any) (gcodes.Code, bool) {
	switch c := v.(type) {
	case gcodes.Code:
		return c, c <= gcodes.Unauthenticated
	case int:
		if c < int(gcodes.OK) || c > int(gcodes.Unauthenticated) {
			return 0, false
		}
		return gcodes.Code(c), true
	case string:
		var parsed gcodes.Code
		if err := parsed.UnmarshalJSON([]byte(strconv.Quote(c))); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func message(errs []*rop.Error) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message())
	}
	return strings.Join(msgs, "; ")
}

func errorInfo(e *rop.Error, domain string) *errdetails.ErrorInfo {
	md := e.Metadata()
	info := &errdetails.ErrorInfo{
		Reason:   defaultReason,
		Domain:   domain,
		Metadata: make(map[string]string, len(md)+1),
	}
	for k, v := range md {
		if k == MetadataReason {
			info.Reason = fmt.Sprint(v)
			continue
		}
		info.Metadata[k] = fmt.Sprint(v)
	}
	info.Metadata[messageKey] = e.Message()
	return info
}

func fromErrorInfo(info *errdetails.ErrorInfo, st *gstatus.Status) *rop.Error {
	msg, ok := info.GetMetadata()[messageKey]
	if !ok {
		msg = st.Message()
	}

	e := rop.NewError(msg).WithMetadata(MetadataCode, st.Code())
	if info.GetReason() != defaultReason {
		e = e.WithMetadata(MetadataReason, info.GetReason())
	}
	for k, v := range info.GetMetadata() {
		if k == messageKey || k == MetadataCode {
			continue
		}
		e = e.WithMetadata(k, v)
	}
	return e
}
