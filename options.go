package timebridge

import (
	golog "github.com/fclairamb/go-log"
)

type option struct {
	logger     golog.Logger
	strictUTF8 bool
}

func newOption() *option {
	return &option{
		logger:     nopLogger{},
		strictUTF8: true,
	}
}

// Option is the options that could be passed to a Bridge.
type Option func(*option)

// Logger sets the structured logger receiving a debug event
// for every host call and a warning for every failure.
//
// Nothing is logged by default.
func Logger(value golog.Logger) Option {
	return func(o *option) {
		if value == nil {
			value = nopLogger{}
		}
		o.logger = value
	}
}

// StrictUTF8 is used to indicate whether paths must be valid
// UTF-8 before being passed to the host.
//
// The capability based hosts only accept UTF-8 strings, so
// this value is true by default. Linux itself accepts any
// byte sequence without NUL, set it to false to pass such
// paths through.
func StrictUTF8(value bool) Option {
	return func(o *option) {
		o.strictUTF8 = value
	}
}

// Options is used to aggregate a bundle of options.
func Options(opts ...Option) Option {
	return func(o *option) {
		for _, opt := range opts {
			opt(o)
		}
	}
}
