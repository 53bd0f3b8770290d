package anneal

import (
	"context"

	"github.com/katalvlaran/qseg/qubo"
)

// FixedConnector is a deterministic stand-in for a remote sampler. Connect
// fails with ConnectErr when set; otherwise the returned sampler answers
// every request with a copy of Set (or fails with SampleErr).
type FixedConnector struct {
	Set        *SampleSet
	ConnectErr error
	SampleErr  error

	// Connects counts Connect calls.
	Connects int
}

// Connect implements Connector.
func (f *FixedConnector) Connect(ctx context.Context, _, _ string) (Sampler, error) {
	f.Connects++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.ConnectErr != nil {
		return nil, f.ConnectErr
	}

	return &FixedSampler{Set: f.Set, Err: f.SampleErr}, nil
}

// FixedSampler returns a copy of Set for every request.
type FixedSampler struct {
	Set *SampleSet
	Err error

	// Calls counts Sample calls; LastReads records the last read count.
	Calls     int
	LastReads int
}

// Sample implements Sampler. A nil Set yields the all-zero assignment of m.
func (f *FixedSampler) Sample(ctx context.Context, m *qubo.Model, reads int) (*SampleSet, error) {
	f.Calls++
	f.LastReads = reads
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Set == nil {
		return NewSampleSet(m, [][]int{make([]int, m.NumVariables())}, []int{reads})
	}

	return f.Set.Clone(), nil
}
