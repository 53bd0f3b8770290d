// Package mask turns sampled bit strings back into segmentation masks.
//
// A sample assigns one bit per graph node; node k is the pixel
// (k / width, k % width). Decode is the left inverse of row-major
// flattening (Flatten).
//
// Errors:
//
//   - ErrLength: len(x) != height*width (wraps qseg.ErrShape).
//   - ErrDimensions: negative height or width (wraps qseg.ErrShape).
//   - ErrRagged: a mask whose rows differ in length (wraps qseg.ErrShape).
package mask
