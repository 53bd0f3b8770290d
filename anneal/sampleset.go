package anneal

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/qseg/qubo"
)

// Record is one returned assignment with its energy and occurrence count.
// Sample is aligned with SampleSet.Variables.
type Record struct {
	Sample         []int
	Energy         float64
	NumOccurrences int
}

// SampleSet is the opaque result of a sampler: one record per distinct
// assignment plus the timing report of the service (keys as the service
// names them, values as it reports them).
type SampleSet struct {
	Variables []int
	Records   []Record
	Timing    map[string]float64
	Vartype   qubo.Vartype
}

// NewSampleSet builds a sample set over m's variables, evaluating the
// energy of every sample. occurrences may be nil (all ones).
// Samples must cover every variable of m.
func NewSampleSet(m *qubo.Model, samples [][]int, occurrences []int) (*SampleSet, error) {
	if occurrences != nil && len(occurrences) != len(samples) {
		return nil, fmt.Errorf("NewSampleSet: %d occurrence counts for %d samples: %w",
			len(occurrences), len(samples), qubo.ErrSampleLength)
	}
	n := m.NumVariables()
	vars := make([]int, n)
	for i := range vars {
		vars[i] = i
	}
	ss := &SampleSet{Variables: vars, Timing: map[string]float64{}, Vartype: m.Vartype}
	for k, x := range samples {
		if len(x) != n {
			return nil, fmt.Errorf("NewSampleSet: sample %d has %d values, want %d: %w", k, len(x), n, qubo.ErrSampleLength)
		}
		e, err := m.Energy(x)
		if err != nil {
			return nil, err
		}
		occ := 1
		if occurrences != nil {
			occ = occurrences[k]
		}
		ss.Records = append(ss.Records, Record{Sample: append([]int(nil), x...), Energy: e, NumOccurrences: occ})
	}

	return ss, nil
}

// Len returns the number of records.
func (s *SampleSet) Len() int {
	return len(s.Records)
}

// Lowest returns the record with the smallest energy; ties resolve to the
// earliest record. Returns ErrEmptySampleSet for an empty set.
func (s *SampleSet) Lowest() (Record, error) {
	if len(s.Records) == 0 {
		return Record{}, ErrEmptySampleSet
	}
	best := 0
	for i, r := range s.Records {
		if r.Energy < s.Records[best].Energy {
			best = i
		}
	}

	return s.Records[best], nil
}

// Clone returns a deep copy of the sample set.
func (s *SampleSet) Clone() *SampleSet {
	out := &SampleSet{
		Variables: append([]int(nil), s.Variables...),
		Records:   make([]Record, len(s.Records)),
		Timing:    make(map[string]float64, len(s.Timing)),
		Vartype:   s.Vartype,
	}
	for i, r := range s.Records {
		out.Records[i] = Record{Sample: append([]int(nil), r.Sample...), Energy: r.Energy, NumOccurrences: r.NumOccurrences}
	}
	for k, v := range s.Timing {
		out.Timing[k] = v
	}

	return out
}

// Table column names appended after the variable columns.
const (
	ColumnEnergy         = "energy"
	ColumnNumOccurrences = "num_occurrences"
)

// Table is the tabular view of a sample set: one row per record, one column
// per variable followed by energy and num_occurrences.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Table materializes the sample set as a Table.
// Complexity: O(records × variables).
func (s *SampleSet) Table() *Table {
	t := &Table{
		Columns: make([]string, 0, len(s.Variables)+2),
		Rows:    make([][]float64, 0, len(s.Records)),
	}
	for _, v := range s.Variables {
		t.Columns = append(t.Columns, strconv.Itoa(v))
	}
	t.Columns = append(t.Columns, ColumnEnergy, ColumnNumOccurrences)
	for _, r := range s.Records {
		row := make([]float64, 0, len(t.Columns))
		for _, b := range r.Sample {
			row = append(row, float64(b))
		}
		row = append(row, r.Energy, float64(r.NumOccurrences))
		t.Rows = append(t.Rows, row)
	}

	return t
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}

	return -1
}

// Assignment spreads a record over variable indices [0,n): result[v] is the
// value of variable v, zero for variables the set did not sample.
// Returns qubo.ErrSampleLength if a sampled variable falls outside [0,n).
func (s *SampleSet) Assignment(r Record, n int) ([]int, error) {
	x := make([]int, n)
	for k, v := range s.Variables {
		if v < 0 || v >= n || k >= len(r.Sample) {
			return nil, fmt.Errorf("Assignment: variable %d outside [0,%d): %w", v, n, qubo.ErrSampleLength)
		}
		x[v] = r.Sample[k]
	}

	return x, nil
}
