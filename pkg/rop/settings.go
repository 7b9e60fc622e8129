package rop

import "context"

type settingsKey struct{}

// CatchHandler turns an error raised inside a Try combinator into an Error
// reason. Panics reach it wrapped in a *PanicError.
type CatchHandler func(err error) *Error

// Settings holds the factories used when the library has to build errors on
// its own. Settings travel with the context; a context without settings uses
// DefaultSettings.
type Settings struct {
	// ErrorFactory builds an Error from a message
	ErrorFactory func(message string) *Error
	// ExceptionalErrorFactory builds an Error wrapping a Go error
	ExceptionalErrorFactory func(message string, err error) *Error
	// CatchHandler is used by every Try combinator
	CatchHandler CatchHandler
}

func DefaultSettings() Settings {
	s := Settings{
		ErrorFactory:            NewError,
		ExceptionalErrorFactory: NewExceptionalError,
	}
	s.CatchHandler = s.defaultCatchHandler
	return s
}

// defaultCatchHandler keeps an *Error returned by the function as it is and
// wraps any other error with the ExceptionalErrorFactory.
func (s Settings) defaultCatchHandler(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return s.ExceptionalErrorFactory(err.Error(), err)
}

// WithSettings attaches s to ctx. Nil factories are filled from DefaultSettings.
func WithSettings(ctx context.Context, s Settings) context.Context {
	def := DefaultSettings()
	if s.ErrorFactory == nil {
		s.ErrorFactory = def.ErrorFactory
	}
	if s.ExceptionalErrorFactory == nil {
		s.ExceptionalErrorFactory = def.ExceptionalErrorFactory
	}
	if s.CatchHandler == nil {
		s.CatchHandler = s.defaultCatchHandler
	}
	return context.WithValue(ctx, settingsKey{}, s)
}

// WithCatchHandler replaces only the catch handler of the settings in ctx.
func WithCatchHandler(ctx context.Context, h CatchHandler) context.Context {
	MustNotNil("h", h)
	s := SettingsFrom(ctx)
	s.CatchHandler = h
	return WithSettings(ctx, s)
}

func SettingsFrom(ctx context.Context) Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(Settings); ok {
			return s
		}
	}
	return DefaultSettings()
}
