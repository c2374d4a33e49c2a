package measure

type Option func(*options)

type options struct {
	exact bool
}

// WithExactDispersion computes dispersion in rational arithmetic before
// converting the result to float64.
func WithExactDispersion() Option {
	return func(o *options) { o.exact = true }
}

// WithDispersionMode selects exact arithmetic when exact is true.
func WithDispersionMode(exact bool) Option {
	return func(o *options) { o.exact = exact }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
