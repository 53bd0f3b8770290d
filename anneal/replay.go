package anneal

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/qseg/qubo"
)

// ReplayConnector serves a sample set previously recorded with WriteJSON,
// so a pipeline can be exercised without access to the service.
type ReplayConnector struct {
	Path string
}

// Connect implements Connector. A missing file is reported as ErrUnavailable.
func (r ReplayConnector) Connect(ctx context.Context, _, _ string) (Sampler, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.Path); err != nil {
		return nil, fmt.Errorf("replay %s: %v: %w", r.Path, err, ErrUnavailable)
	}

	return replaySampler{path: r.Path}, nil
}

type replaySampler struct {
	path string
}

// Sample reads the recording and checks it against m with checkRecording;
// a mismatch is ErrRejected.
func (r replaySampler) Sample(ctx context.Context, m *qubo.Model, _ int) (*SampleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %v: %w", r.path, err, ErrUnavailable)
	}
	defer f.Close()

	ss, err := ReadJSON(f, m)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %v: %w", r.path, err, ErrRejected)
	}
	if err := checkRecording(ss, m); err != nil {
		return nil, fmt.Errorf("replay %s: %v: %w", r.path, err, ErrRejected)
	}

	return ss, nil
}

// checkRecording requires the recorded variables to be a permutation of
// m's indices 0..n-1 and every value to lie in m's domain.
func checkRecording(ss *SampleSet, m *qubo.Model) error {
	n := m.NumVariables()
	if len(ss.Variables) != n {
		return fmt.Errorf("%d variables recorded, model has %d", len(ss.Variables), n)
	}
	seen := make([]bool, n)
	for _, v := range ss.Variables {
		if v < 0 || v >= n {
			return fmt.Errorf("variable %d outside [0,%d)", v, n)
		}
		if seen[v] {
			return fmt.Errorf("variable %d recorded twice", v)
		}
		seen[v] = true
	}
	valid := func(x int) bool { return x == 0 || x == 1 }
	if m.Vartype == qubo.Spin {
		valid = func(x int) bool { return x == -1 || x == 1 }
	}
	for k, r := range ss.Records {
		for _, x := range r.Sample {
			if !valid(x) {
				return fmt.Errorf("record %d: value %d is not %s", k, x, m.Vartype)
			}
		}
	}

	return nil
}
