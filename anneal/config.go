package anneal

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Defaults (single source of truth).
const (
	// DefaultTopology selects the hardware graph family.
	DefaultTopology = "pegasus"
	// DefaultReads is the number of samples requested per submission.
	DefaultReads = 10000
	// DefaultRetries disables retrying.
	DefaultRetries = 0
	// DefaultRetryWait is the first back-off interval; it doubles per attempt.
	DefaultRetryWait = 200 * time.Millisecond
	// maxRetryWait caps the back-off interval.
	maxRetryWait = time.Minute
)

// Composite wraps a connected sampler, e.g. with minor embedding onto the
// hardware topology.
type Composite interface {
	Compose(ctx context.Context, child Sampler) (Sampler, error)
}

// CompositeFunc adapts a function to Composite.
type CompositeFunc func(ctx context.Context, child Sampler) (Sampler, error)

// Compose implements Composite.
func (f CompositeFunc) Compose(ctx context.Context, child Sampler) (Sampler, error) {
	return f(ctx, child)
}

// Identity passes the child sampler through unchanged.
var Identity Composite = CompositeFunc(func(_ context.Context, child Sampler) (Sampler, error) {
	return child, nil
})

// Config carries every knob of a Solve call explicitly.
type Config struct {
	// Token is the opaque API credential handed to Connector.Connect.
	Token string
	// Topology selects the hardware graph (DefaultTopology).
	Topology string
	// Reads is the number of samples requested (DefaultReads).
	Reads int
	// Timeout bounds the whole round-trip; zero means no timeout.
	Timeout time.Duration
	// Retries is the number of extra attempts for retryable failures.
	Retries int
	// RetryWait is the first back-off interval (DefaultRetryWait).
	RetryWait time.Duration
	// Composite wraps the connected sampler (Identity when nil).
	Composite Composite
	// Clock measures phase durations and drives back-off (clock.New()).
	Clock clock.Clock
	// Logger receives per-phase debug events (zerolog.Nop()).
	Logger zerolog.Logger
}

// DefaultConfig returns a Config with documented defaults.
func DefaultConfig() Config {
	return Config{
		Topology:  DefaultTopology,
		Reads:     DefaultReads,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
		Composite: Identity,
		Clock:     clock.New(),
		Logger:    zerolog.Nop(),
	}
}

// withDefaults fills zero-valued fields. Reads is left alone so that an
// explicit non-positive value is reported rather than replaced.
func (c Config) withDefaults() Config {
	if c.Topology == "" {
		c.Topology = DefaultTopology
	}
	if c.RetryWait <= 0 {
		c.RetryWait = DefaultRetryWait
	}
	if c.Composite == nil {
		c.Composite = Identity
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	return c
}
