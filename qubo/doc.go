// Package qubo turns a weighted adjacency matrix into the coefficients of
// a binary quadratic model (BQM):
//
//	E(x) = offset + Σ_i linear[i]·x_i + Σ_{i<j} quadratic[(i,j)]·x_i·x_j
//
// Two interchangeable Builder strategies are provided:
//
//   - MaxCut: the standard Max-Cut → QUBO reduction of w = -W. Linear
//     coefficients are rounded to two decimals.
//   - Degree: linear[i] = Σ_j W[i,j] (weighted degree),
//     quadratic[(i,j)] = -W[i,j].
//
// Both return a dense linear mapping over [0,n) and a sparse quadratic
// mapping (no zero entries, always i<j). W is the signed weight matrix of
// a gridgraph.GridGraph, so minimizing either model favours cutting the
// negative (dissimilar) edges.
//
// Errors:
//
//   - ErrNonFinite, ErrDiagonal, ErrUnknownFormulation: wrap qseg.ErrDomain.
//   - ErrPairOrder, ErrSampleLength: wrap qseg.ErrShape.
package qubo
