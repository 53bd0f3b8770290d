package mask

import (
	"fmt"

	"github.com/katalvlaran/qseg"
)

var (
	// ErrLength indicates a bit string whose length is not height*width.
	ErrLength = fmt.Errorf("mask: bit string length does not match height*width: %w", qseg.ErrShape)
	// ErrDimensions indicates a negative height or width.
	ErrDimensions = fmt.Errorf("mask: dimensions must be non-negative: %w", qseg.ErrShape)
	// ErrRagged indicates mask rows of differing lengths.
	ErrRagged = fmt.Errorf("mask: all rows must have the same length: %w", qseg.ErrShape)
)
