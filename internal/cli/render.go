package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/katalvlaran/qseg/anneal"
	"github.com/katalvlaran/qseg/gridgraph"
	"github.com/katalvlaran/qseg/segment"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	// column names are data (variable indices, energy), keep their case
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	return t
}

// renderEdges prints one row per edge in construction order.
func renderEdges(out io.Writer, gg *gridgraph.GridGraph) {
	t := newTable(out)
	t.AppendHeader(table.Row{"#", "From", "To", "Raw", "Weight"})
	raw := gg.RawWeights()
	for i, e := range gg.Edges() {
		t.AppendRow(table.Row{
			i,
			fmt.Sprintf("(%d,%d)", e.From.Row, e.From.Col),
			fmt.Sprintf("(%d,%d)", e.To.Row, e.To.Col),
			strconv.FormatFloat(raw[i], 'f', 4, 64),
			strconv.FormatFloat(e.Weight, 'f', 4, 64),
		})
	}
	t.Render()
}

// renderDiagnostics prints the timings sorted by name.
func renderDiagnostics(out io.Writer, d segment.Diagnostics) {
	keys := lo.Keys(d)
	sort.Strings(keys)
	t := newTable(out)
	t.AppendHeader(table.Row{"Timing", "Seconds"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, strconv.FormatFloat(d[k], 'f', 6, 64)})
	}
	t.Render()
}

// renderSamples prints the first limit rows of the sample table; limit <= 0
// prints every row.
func renderSamples(out io.Writer, st *anneal.Table, limit int) {
	t := newTable(out)
	t.AppendHeader(lo.Map(st.Columns, func(c string, _ int) any { return c }))
	energy := st.Column(anneal.ColumnEnergy)
	for i, row := range st.Rows {
		if limit > 0 && i >= limit {
			t.AppendFooter(table.Row{fmt.Sprintf("%d more", len(st.Rows)-limit)})
			break
		}
		t.AppendRow(lo.Map(row, func(v float64, j int) any {
			if j == energy {
				return strconv.FormatFloat(v, 'g', -1, 64)
			}
			return int(v)
		}))
	}
	t.Render()
}

// renderMask prints the mask one row per line.
func renderMask(out io.Writer, m [][]int) {
	for _, row := range m {
		fmt.Fprintln(out, row)
	}
}
