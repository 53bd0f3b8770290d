package gridgraph

// DefaultSigma is the Gaussian spread used when no WithSigma option is given.
const DefaultSigma = 0.5

// Normalization target range and rounding of the final edge weights.
const (
	normLow         = -1.0
	normHigh        = 1.0
	weightPrecision = 4
)

// uniformWeight is assigned to every edge of a perfectly uniform image.
const uniformWeight = 1.0

// Options contains tunable parameters for grid graph construction.
type Options struct {
	// Sigma is the spread of the Gaussian similarity between neighbours.
	Sigma float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with Sigma=DefaultSigma.
func DefaultOptions() Options {
	return Options{Sigma: DefaultSigma}
}

// WithSigma sets the Gaussian spread. Validation happens in NewGridGraph so
// that an invalid value surfaces as ErrSigma rather than a panic.
func WithSigma(sigma float64) Option {
	return func(o *Options) { o.Sigma = sigma }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
