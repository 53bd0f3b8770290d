package anneal_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qseg/anneal"
	"github.com/katalvlaran/qseg/qubo"
)

func TestNewSampleSet(t *testing.T) {
	m := twoVarModel(t)
	ss, err := anneal.NewSampleSet(m, [][]int{{0, 0}, {1, 0}, {1, 1}}, []int{5, 2, 7})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, ss.Variables)
	require.Equal(t, 3, ss.Len())
	require.Equal(t, []float64{0, 1, 0}, []float64{ss.Records[0].Energy, ss.Records[1].Energy, ss.Records[2].Energy})

	// ties resolve to the earliest record
	best, err := ss.Lowest()
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, best.Sample)
	require.Equal(t, 5, best.NumOccurrences)

	_, err = anneal.NewSampleSet(m, [][]int{{1}}, nil)
	require.ErrorIs(t, err, qubo.ErrSampleLength)
	_, err = anneal.NewSampleSet(m, [][]int{{1, 1}}, []int{1, 2})
	require.ErrorIs(t, err, qubo.ErrSampleLength)
}

func TestLowest_Empty(t *testing.T) {
	_, err := (&anneal.SampleSet{}).Lowest()
	require.ErrorIs(t, err, anneal.ErrEmptySampleSet)
}

// TestTable checks one row per record and the trailing metadata columns.
func TestTable(t *testing.T) {
	m := twoVarModel(t)
	ss, err := anneal.NewSampleSet(m, [][]int{{1, 0}, {1, 1}}, []int{3, 4})
	require.NoError(t, err)

	tbl := ss.Table()
	require.Equal(t, []string{"0", "1", anneal.ColumnEnergy, anneal.ColumnNumOccurrences}, tbl.Columns)
	require.Equal(t, [][]float64{{1, 0, 1, 3}, {1, 1, 0, 4}}, tbl.Rows)
	require.Equal(t, 2, tbl.Column(anneal.ColumnEnergy))
	require.Equal(t, -1, tbl.Column("missing"))
}

func TestClone_Independent(t *testing.T) {
	ss, err := anneal.NewSampleSet(twoVarModel(t), [][]int{{1, 0}}, nil)
	require.NoError(t, err)
	ss.Timing["qpu_access_time"] = 10
	c := ss.Clone()
	c.Records[0].Sample[0] = 0
	c.Timing["qpu_access_time"] = 20
	require.Equal(t, 1, ss.Records[0].Sample[0])
	require.Equal(t, 10.0, ss.Timing["qpu_access_time"])
}

func TestSampleSetJSON(t *testing.T) {
	m := twoVarModel(t)
	ss, err := anneal.NewSampleSet(m, [][]int{{1, 1}, {0, 1}}, []int{9, 1})
	require.NoError(t, err)
	ss.Timing["qpu_access_time"] = 15342.5

	var buf bytes.Buffer
	require.NoError(t, anneal.WriteJSON(&buf, ss))
	back, err := anneal.ReadJSON(&buf, m)
	require.NoError(t, err)
	require.Equal(t, ss, back)
}

// TestReadJSON_FillsEnergy evaluates records that carry no energy.
func TestReadJSON_FillsEnergy(t *testing.T) {
	m := twoVarModel(t)
	in := `{"variables":[0,1],"records":[{"sample":[0,1]},{"sample":[1,1],"energy":-7,"num_occurrences":2}]}`
	ss, err := anneal.ReadJSON(bytes.NewBufferString(in), m)
	require.NoError(t, err)
	require.Equal(t, qubo.Binary, ss.Vartype)
	require.Equal(t, 1.0, ss.Records[0].Energy)
	require.Equal(t, 1, ss.Records[0].NumOccurrences)
	require.Equal(t, -7.0, ss.Records[1].Energy)

	_, err = anneal.ReadJSON(bytes.NewBufferString(`{"variables":[0,1],"records":[{"sample":[1]}]}`), m)
	require.ErrorIs(t, err, qubo.ErrSampleLength)
}

//----------------------------------------------------------------------------//
// Replay
//----------------------------------------------------------------------------//

func writeRecording(t *testing.T, ss *anneal.SampleSet) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, anneal.WriteJSON(f, ss))
	require.NoError(t, f.Close())
	return path
}

func TestReplayConnector(t *testing.T) {
	m := twoVarModel(t)
	ss, err := anneal.NewSampleSet(m, [][]int{{1, 1}}, []int{100})
	require.NoError(t, err)
	path := writeRecording(t, ss)

	got, _, err := anneal.Solve(context.Background(), anneal.ReplayConnector{Path: path}, m, anneal.Config{Reads: 100})
	require.NoError(t, err)
	require.Equal(t, ss.Records, got.Records)
}

func TestReplayConnector_Errors(t *testing.T) {
	m := twoVarModel(t)
	_, _, err := anneal.Solve(context.Background(),
		anneal.ReplayConnector{Path: filepath.Join(t.TempDir(), "absent.json")}, m, anneal.Config{Reads: 1})
	require.ErrorIs(t, err, anneal.ErrUnavailable)

	// recorded for a 3-variable model, replayed against a 2-variable one
	linear := map[int]float64{}
	for i := 0; i < 3; i++ {
		linear[i] = float64(i)
	}
	bigger, err := qubo.NewModel(linear, nil, 0, qubo.Binary)
	require.NoError(t, err)
	ss, err := anneal.NewSampleSet(bigger, [][]int{{1, 0, 1}}, nil)
	require.NoError(t, err)
	_, _, err = anneal.Solve(context.Background(), anneal.ReplayConnector{Path: writeRecording(t, ss)}, m, anneal.Config{Reads: 1})
	require.ErrorIs(t, err, anneal.ErrRejected)
	require.Contains(t, err.Error(), strconv.Itoa(3))
}

func writeRaw(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReplayConnector_RejectsMalformedRecordings(t *testing.T) {
	m := twoVarModel(t)
	cases := []struct {
		name string
		body string
	}{
		{"DuplicateVariable", `{"variables":[0,0],"records":[{"sample":[1,1]}]}`},
		{"VariableOutOfRange", `{"variables":[0,5],"records":[{"sample":[1,1]}]}`},
		{"NegativeVariable", `{"variables":[-1,0],"records":[{"sample":[1,1]}]}`},
		{"NonBinaryValue", `{"variables":[0,1],"records":[{"sample":[1,7]}]}`},
		{"SpinValueInBinaryModel", `{"variables":[0,1],"records":[{"sample":[-1,1]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := anneal.Solve(context.Background(), anneal.ReplayConnector{Path: writeRaw(t, tc.body)}, m, anneal.Config{Reads: 1})
			require.ErrorIs(t, err, anneal.ErrRejected)
			var se *anneal.ServiceError
			require.ErrorAs(t, err, &se)
			require.Equal(t, "sample", se.Op)
		})
	}
}

func TestReplayConnector_PermutedVariables(t *testing.T) {
	m := twoVarModel(t)
	path := writeRaw(t, `{"variables":[1,0],"records":[{"sample":[1,0],"num_occurrences":4}]}`)
	ss, _, err := anneal.Solve(context.Background(), anneal.ReplayConnector{Path: path}, m, anneal.Config{Reads: 4})
	require.NoError(t, err)
	x, err := ss.Assignment(ss.Records[0], m.NumVariables())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, x)
	require.Equal(t, 1.0, ss.Records[0].Energy)
}

func TestAssignment(t *testing.T) {
	ss := &anneal.SampleSet{
		Variables: []int{2, 0},
		Records:   []anneal.Record{{Sample: []int{1, 1}}},
	}
	x, err := ss.Assignment(ss.Records[0], 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1}, x)

	_, err = ss.Assignment(ss.Records[0], 2)
	require.ErrorIs(t, err, qubo.ErrSampleLength)
}
