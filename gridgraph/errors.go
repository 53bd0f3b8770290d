package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/qseg"
)

var (
	// ErrEmptyGrid indicates the input image has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("gridgraph: input grid must have at least one row and one column: %w", qseg.ErrShape)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("gridgraph: all rows must have the same length: %w", qseg.ErrShape)
	// ErrLabelShape indicates a label grid whose shape differs from the graph.
	ErrLabelShape = fmt.Errorf("gridgraph: label grid does not match graph shape: %w", qseg.ErrShape)
	// ErrSigma indicates a non-positive or non-finite similarity spread.
	ErrSigma = fmt.Errorf("gridgraph: sigma must be finite and > 0: %w", qseg.ErrDomain)
)
