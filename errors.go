package qseg

import "errors"

// Error taxonomy. Package-level sentinels in the subpackages wrap one of
// these, so callers can match either the precise sentinel or the class.
var (
	// ErrDomain indicates an invalid numeric parameter (e.g. sigma <= 0).
	ErrDomain = errors.New("qseg: invalid numeric parameter")

	// ErrShape indicates mismatched or malformed array dimensions.
	ErrShape = errors.New("qseg: shape mismatch")

	// ErrService indicates the external sampler failed: unreachable,
	// authentication rejected or problem rejected as malformed.
	ErrService = errors.New("qseg: sampling service failure")
)
