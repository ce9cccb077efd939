package store

// Option configures database connection settings.
type Option func(*Options)

// Options holds store connection configuration.
type Options struct {
	MaxConns int32

	PreferSimpleProtocol   bool
	SkipDefaultTransaction bool
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		PreferSimpleProtocol:   true,
		SkipDefaultTransaction: true,
	}

	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMaxConns caps the pgx pool size.
func WithMaxConns(maxConns int32) Option {
	return func(o *Options) {
		o.MaxConns = maxConns
	}
}

// WithPreferSimpleProtocol returns an Option to configure the database connection prefer simple protocol.
func WithPreferSimpleProtocol(preferSimpleProtocol bool) Option {
	return func(o *Options) {
		o.PreferSimpleProtocol = preferSimpleProtocol
	}
}

// WithSkipDefaultTransaction returns an Option to configure the database connection skip default transaction.
func WithSkipDefaultTransaction(skipDefaultTransaction bool) Option {
	return func(o *Options) {
		o.SkipDefaultTransaction = skipDefaultTransaction
	}
}
