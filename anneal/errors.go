package anneal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qseg"
)

var (
	// ErrAuth indicates the sampler rejected the credential. Not retried.
	ErrAuth = fmt.Errorf("anneal: authentication rejected: %w", qseg.ErrService)
	// ErrUnavailable indicates the sampler could not be reached. Retried.
	ErrUnavailable = fmt.Errorf("anneal: sampler unavailable: %w", qseg.ErrService)
	// ErrRejected indicates the sampler refused the problem. Not retried.
	ErrRejected = fmt.Errorf("anneal: problem rejected: %w", qseg.ErrService)
	// ErrEmptySampleSet indicates a sample set without records.
	ErrEmptySampleSet = errors.New("anneal: sample set is empty")
	// ErrReads indicates a non-positive read count.
	ErrReads = fmt.Errorf("anneal: reads must be > 0: %w", qseg.ErrDomain)
)

// ServiceError reports a failed sampler phase. It unwraps to both
// qseg.ErrService and the underlying cause.
type ServiceError struct {
	Op  string // connect, embed, sample or validate
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("anneal: %s: %v", e.Op, e.Err)
}

// Unwrap implements multi-error unwrapping for errors.Is / errors.As.
func (e *ServiceError) Unwrap() []error {
	return []error{qseg.ErrService, e.Err}
}

func serviceErrorf(op string, err error) error {
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}

	return &ServiceError{Op: op, Err: err}
}

// terminal reports whether err must not be retried.
func terminal(err error) bool {
	return errors.Is(err, ErrAuth) || errors.Is(err, ErrRejected) ||
		errors.Is(err, qseg.ErrDomain) || errors.Is(err, qseg.ErrShape)
}
