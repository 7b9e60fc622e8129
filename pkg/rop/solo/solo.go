package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](errs ...*rop.Error) rop.Result[T] {
	return rop.Fail[T](errs...)
}

// FailMsg builds the error with the ErrorFactory of the settings in ctx.
func FailMsg[T any](ctx context.Context, message string) rop.Result[T] {
	return rop.Fail[T](rop.SettingsFrom(ctx).ErrorFactory(message))
}

// Try runs f and turns a returned error or a panic into a failed Result
// using the catch handler of the settings in ctx.
func Try[T any](ctx context.Context, f func(ctx context.Context) (T, error)) rop.Result[T] {
	rop.MustNotNil("f", f)

	var out T
	if caught := catch(ctx, func() (err error) {
		out, err = f(ctx)
		return err
	}); caught != nil {
		return rop.Fail[T](caught)
	}
	return rop.Success(out)
}

// catch runs f and converts its error, or a recovered panic, into an Error.
// It returns nil when f completes without error.
func catch(ctx context.Context, f func() error) (caught *rop.Error) {
	defer func() {
		if rec := recover(); rec != nil {
			caught = handle(ctx, &rop.PanicError{Value: rec})
		}
	}()

	if err := f(); err != nil {
		return handle(ctx, err)
	}
	return nil
}

func handle(ctx context.Context, err error) *rop.Error {
	if e := rop.SettingsFrom(ctx).CatchHandler(err); e != nil {
		return e
	}
	return rop.ErrorFrom(err)
}
