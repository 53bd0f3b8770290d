package anneal

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/qseg/qubo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type recordWire struct {
	Sample         []int    `json:"sample"`
	Energy         *float64 `json:"energy,omitempty"`
	NumOccurrences int      `json:"num_occurrences"`
}

type sampleSetWire struct {
	Vartype   string             `json:"vartype"`
	Variables []int              `json:"variables"`
	Records   []recordWire       `json:"records"`
	Timing    map[string]float64 `json:"timing,omitempty"`
}

// WriteJSON encodes s to out.
func WriteJSON(out io.Writer, s *SampleSet) error {
	w := sampleSetWire{
		Vartype:   s.Vartype.String(),
		Variables: s.Variables,
		Records:   make([]recordWire, len(s.Records)),
		Timing:    s.Timing,
	}
	for i, r := range s.Records {
		e := r.Energy
		w.Records[i] = recordWire{Sample: r.Sample, Energy: &e, NumOccurrences: r.NumOccurrences}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(w)
}

// ReadJSON decodes a sample set. Records without an energy are evaluated
// against m; records with one keep the reported value. A record whose
// length differs from the variable list is rejected.
func ReadJSON(in io.Reader, m *qubo.Model) (*SampleSet, error) {
	var w sampleSetWire
	if err := json.NewDecoder(in).Decode(&w); err != nil {
		return nil, err
	}
	vt := qubo.Binary
	if w.Vartype != "" {
		var err error
		if vt, err = qubo.ParseVartype(w.Vartype); err != nil {
			return nil, err
		}
	}
	s := &SampleSet{Variables: w.Variables, Timing: w.Timing, Vartype: vt}
	if s.Timing == nil {
		s.Timing = map[string]float64{}
	}
	for _, rw := range w.Records {
		if len(rw.Sample) != len(w.Variables) {
			return nil, qubo.ErrSampleLength
		}
		r := Record{Sample: rw.Sample, NumOccurrences: rw.NumOccurrences}
		if r.NumOccurrences == 0 {
			r.NumOccurrences = 1
		}
		if rw.Energy != nil {
			r.Energy = *rw.Energy
		} else {
			e, err := energyByVariable(m, w.Variables, rw.Sample)
			if err != nil {
				return nil, err
			}
			r.Energy = e
		}
		s.Records = append(s.Records, r)
	}

	return s, nil
}

// energyByVariable evaluates m for a sample whose columns follow vars.
func energyByVariable(m *qubo.Model, vars, sample []int) (float64, error) {
	x := make([]int, m.NumVariables())
	for k, v := range vars {
		if v >= 0 && v < len(x) {
			x[v] = sample[k]
		}
	}

	return m.Energy(x)
}
