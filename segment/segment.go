package segment

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/katalvlaran/qseg/anneal"
	"github.com/katalvlaran/qseg/gridgraph"
	"github.com/katalvlaran/qseg/mask"
	"github.com/katalvlaran/qseg/qubo"
)

// DefaultSamples is the number of reads requested per segmentation.
const DefaultSamples = 2000

// Diagnostics keys added on top of anneal's phase timings.
const (
	KeyProblemFormulationTime = "problem_formulation_time"
	KeySampleFetchTime        = "sample_fetch_time"
)

// Diagnostics maps timing names to seconds.
type Diagnostics map[string]float64

// Config carries the tuning of one segmentation. Zero fields are not
// replaced: start from DefaultConfig. Anneal's Clock and Logger are also
// used for the formulation and fetch timings.
type Config struct {
	// Sigma is the Gaussian similarity spread; must be > 0.
	Sigma float64
	// Formulation names the qubo.Builder; empty selects qubo.DefaultFormulation.
	Formulation string
	// Anneal configures the sampler round-trip; Reads must be > 0.
	Anneal anneal.Config
}

// DefaultConfig returns gridgraph.DefaultSigma, qubo.DefaultFormulation
// and DefaultSamples reads.
func DefaultConfig() Config {
	ac := anneal.DefaultConfig()
	ac.Reads = DefaultSamples

	return Config{
		Sigma:       gridgraph.DefaultSigma,
		Formulation: qubo.DefaultFormulation,
		Anneal:      ac,
	}
}

func (c Config) clock() clock.Clock {
	if c.Anneal.Clock == nil {
		return clock.New()
	}

	return c.Anneal.Clock
}

// Solution is the outcome of AnnealerSolver.
type Solution struct {
	Model       *qubo.Model
	Samples     *anneal.SampleSet
	Table       *anneal.Table
	Diagnostics Diagnostics
}

// AnnealerSolver formulates gg with cfg.Formulation, samples the model
// through conn and returns the sample table with merged diagnostics.
// Service failures are returned unchanged (*anneal.ServiceError).
func AnnealerSolver(ctx context.Context, gg *gridgraph.GridGraph, conn anneal.Connector, cfg Config) (*Solution, error) {
	clk := cfg.clock()
	log := cfg.Anneal.Logger

	start := clk.Now()
	b, err := qubo.NewBuilder(cfg.Formulation)
	if err != nil {
		return nil, err
	}
	m, err := qubo.FromGraph(gg, b)
	if err != nil {
		return nil, fmt.Errorf("formulate %s: %w", b.Name(), err)
	}
	formulation := clk.Since(start)
	log.Debug().
		Str("formulation", b.Name()).
		Int("variables", len(m.Linear)).
		Int("couplings", len(m.Quadratic)).
		Dur(KeyProblemFormulationTime, formulation).
		Msg("formulated model")

	ss, timing, err := anneal.Solve(ctx, conn, m, cfg.Anneal)
	if err != nil {
		return nil, err
	}

	start = clk.Now()
	table := ss.Table()
	fetch := clk.Since(start)

	diag := make(Diagnostics, len(ss.Timing)+5)
	for k, v := range ss.Timing {
		diag[k] = v
	}
	for k, v := range timing.Seconds() {
		diag[k] = v
	}
	diag[KeyProblemFormulationTime] = formulation.Seconds()
	diag[KeySampleFetchTime] = fetch.Seconds()

	return &Solution{Model: m, Samples: ss, Table: table, Diagnostics: diag}, nil
}

// Result is the outcome of Segment.
type Result struct {
	*Solution
	Graph   *gridgraph.GridGraph
	Best    anneal.Record
	Mask    [][]int
	Cut     []gridgraph.Edge
	Regions []mask.Region
}

// Segment runs the whole pipeline on img and decodes the lowest-energy
// sample into a mask.
func Segment(ctx context.Context, img [][]float64, conn anneal.Connector, cfg Config) (*Result, error) {
	gg, err := gridgraph.NewGridGraph(img, gridgraph.WithSigma(cfg.Sigma))
	if err != nil {
		return nil, err
	}
	cfg.Anneal.Logger.Debug().Int("height", gg.Height).Int("width", gg.Width).Int("edges", gg.EdgeCount()).Msg("built grid graph")

	sol, err := AnnealerSolver(ctx, gg, conn, cfg)
	if err != nil {
		return nil, err
	}
	best, err := sol.Samples.Lowest()
	if err != nil {
		return nil, err
	}
	x, err := sol.Samples.Assignment(best, gg.NodeCount())
	if err != nil {
		return nil, err
	}
	m, err := mask.Decode(x, gg.Height, gg.Width)
	if err != nil {
		return nil, err
	}
	cut, err := gg.CutEdges(m)
	if err != nil {
		return nil, err
	}
	regions, err := mask.Regions(m)
	if err != nil {
		return nil, err
	}

	return &Result{Solution: sol, Graph: gg, Best: best, Mask: m, Cut: cut, Regions: regions}, nil
}
