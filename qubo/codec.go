package qubo

import (
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// modelWire is the JSON form of a Model. Linear keys are decimal variable
// indices; quadratic terms are [i, j, bias] triples ordered by (i, j).
type modelWire struct {
	Vartype   string             `json:"vartype"`
	Offset    float64            `json:"offset"`
	Linear    map[string]float64 `json:"linear"`
	Quadratic [][3]float64       `json:"quadratic"`
}

// MarshalJSON implements json.Marshaler.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wire())
}

func (m *Model) wire() modelWire {
	w := modelWire{
		Vartype:   m.Vartype.String(),
		Offset:    m.Offset,
		Linear:    make(map[string]float64, len(m.Linear)),
		Quadratic: make([][3]float64, 0, len(m.Quadratic)),
	}
	for i, b := range m.Linear {
		w.Linear[strconv.Itoa(i)] = b
	}
	for _, p := range m.Pairs() {
		w.Quadratic = append(w.Quadratic, [3]float64{float64(p.I), float64(p.J), m.Quadratic[p]})
	}

	return w
}

// UnmarshalJSON implements json.Unmarshaler. The decoded model is validated.
func (m *Model) UnmarshalJSON(data []byte) error {
	var w modelWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := w.model()
	if err != nil {
		return err
	}
	*m = *decoded

	return nil
}

func (w modelWire) model() (*Model, error) {
	vt, err := ParseVartype(w.Vartype)
	if err != nil {
		return nil, err
	}
	linear := make(map[int]float64, len(w.Linear))
	for k, b := range w.Linear {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("qubo: linear key %q: %w", k, err)
		}
		linear[i] = b
	}
	quadratic := make(map[Pair]float64, len(w.Quadratic))
	for _, t := range w.Quadratic {
		quadratic[Pair{I: int(t[0]), J: int(t[1])}] = t[2]
	}

	return NewModel(linear, quadratic, w.Offset, vt)
}

// WriteJSON encodes m to out, indented for readability.
func WriteJSON(out io.Writer, m *Model) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(m.wire())
}

// ReadJSON decodes and validates a model from in. Validation errors keep
// their sentinel chain (ErrNonFinite, ErrPairOrder).
func ReadJSON(in io.Reader) (*Model, error) {
	var w modelWire
	if err := json.NewDecoder(in).Decode(&w); err != nil {
		return nil, err
	}

	return w.model()
}
