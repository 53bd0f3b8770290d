package anneal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/katalvlaran/qseg/qubo"
)

// Connector opens a sampler session on the remote service.
type Connector interface {
	Connect(ctx context.Context, token, topology string) (Sampler, error)
}

// Sampler draws reads samples of a model.
type Sampler interface {
	Sample(ctx context.Context, m *qubo.Model, reads int) (*SampleSet, error)
}

// Timing keys reported by Solve.
const (
	KeyConnectionTime = "connection_time"
	KeyEmbeddingTime  = "embedding_time"
	KeyResponseTime   = "response_time"
)

// Timing holds the wall-clock duration of each Solve phase.
type Timing struct {
	Connection time.Duration
	Embedding  time.Duration
	Response   time.Duration
}

// Seconds returns the phases as float seconds keyed by their report names.
func (t Timing) Seconds() map[string]float64 {
	return map[string]float64{
		KeyConnectionTime: t.Connection.Seconds(),
		KeyEmbeddingTime:  t.Embedding.Seconds(),
		KeyResponseTime:   t.Response.Seconds(),
	}
}

// Solve validates m, connects through conn, composes the session with
// cfg.Composite and samples cfg.Reads times. Every failure is returned as a
// *ServiceError; the phases completed before the failure keep their timing.
//
// Retryable failures (anything but ErrAuth, ErrRejected, domain/shape
// errors and context expiry) are retried cfg.Retries times per phase with
// doubling back-off.
func Solve(ctx context.Context, conn Connector, m *qubo.Model, cfg Config) (*SampleSet, Timing, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger.With().Str("topology", cfg.Topology).Int("reads", cfg.Reads).Logger()
	var timing Timing

	if cfg.Reads <= 0 {
		return nil, timing, &ServiceError{Op: "validate", Err: ErrReads}
	}
	if err := m.Validate(); err != nil {
		return nil, timing, &ServiceError{Op: "validate", Err: multierr.Combine(ErrRejected, err)}
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = cfg.Clock.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := cfg.Clock.Now()
	var base Sampler
	err := retry(ctx, cfg, "connect", func(ctx context.Context) error {
		var err error
		base, err = conn.Connect(ctx, cfg.Token, cfg.Topology)
		if err == nil && base == nil {
			err = fmt.Errorf("connector returned no sampler: %w", ErrUnavailable)
		}
		return err
	})
	timing.Connection = cfg.Clock.Since(start)
	if err != nil {
		return nil, timing, serviceErrorf("connect", err)
	}
	log.Debug().Dur(KeyConnectionTime, timing.Connection).Msg("connected to sampler")

	start = cfg.Clock.Now()
	sampler, err := cfg.Composite.Compose(ctx, base)
	timing.Embedding = cfg.Clock.Since(start)
	if err == nil && sampler == nil {
		err = fmt.Errorf("composite returned no sampler: %w", ErrUnavailable)
	}
	if err != nil {
		return nil, timing, serviceErrorf("embed", err)
	}
	log.Debug().Dur(KeyEmbeddingTime, timing.Embedding).Msg("composed sampler")

	start = cfg.Clock.Now()
	var ss *SampleSet
	err = retry(ctx, cfg, "sample", func(ctx context.Context) error {
		var err error
		ss, err = sampler.Sample(ctx, m, cfg.Reads)
		if err == nil && ss == nil {
			err = fmt.Errorf("sampler returned no sample set: %w", ErrUnavailable)
		}
		return err
	})
	timing.Response = cfg.Clock.Since(start)
	if err != nil {
		return nil, timing, serviceErrorf("sample", err)
	}
	log.Debug().Dur(KeyResponseTime, timing.Response).Int("records", ss.Len()).Msg("received samples")

	return ss, timing, nil
}

// retry runs fn, then up to cfg.Retries more times while the failure is
// retryable, waiting RetryWait, 2·RetryWait, ... (capped) on cfg.Clock
// between attempts. The returned error combines every attempt's failure.
func retry(ctx context.Context, cfg Config, op string, fn func(context.Context) error) error {
	var errs error
	wait := cfg.RetryWait
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		errs = multierr.Append(errs, err)
		if terminal(err) || attempt >= cfg.Retries {
			return errs
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return multierr.Append(errs, ctxErr)
		}
		cfg.Logger.Debug().Err(err).Str("op", op).Int("attempt", attempt+1).Dur("wait", wait).Msg("retrying sampler call")

		timer := cfg.Clock.Timer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return multierr.Append(errs, ctx.Err())
		case <-timer.C:
		}
		wait = min(2*wait, maxRetryWait)
	}
}
