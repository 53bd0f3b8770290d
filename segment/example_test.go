package segment_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qseg/anneal"
	"github.com/katalvlaran/qseg/gridgraph"
	"github.com/katalvlaran/qseg/qubo"
	"github.com/katalvlaran/qseg/segment"
)

// ExampleSegment splits a two-column image using recorded samples.
func ExampleSegment() {
	img := [][]float64{
		{0.1, 0.9},
		{0.1, 0.9},
	}
	gg, _ := gridgraph.NewGridGraph(img)
	m, _ := qubo.FromGraph(gg, qubo.MaxCut{})
	recorded, _ := anneal.NewSampleSet(m, [][]int{{0, 0, 0, 0}, {0, 1, 0, 1}}, []int{700, 1300})

	res, err := segment.Segment(context.Background(), img, &anneal.FixedConnector{Set: recorded}, segment.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range res.Mask {
		fmt.Println(row)
	}
	fmt.Printf("energy %.0f, %d cut edges, %d regions\n", res.Best.Energy, len(res.Cut), len(res.Regions))
	// Output:
	// [0 1]
	// [0 1]
	// energy -2, 2 cut edges, 2 regions
}
