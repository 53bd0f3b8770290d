// Package qseg segments grayscale images by turning them into a
// Minimum-Cut problem over a weighted pixel grid and handing the resulting
// binary quadratic model to an annealing sampler.
//
// The pipeline runs strictly forward:
//
//	image ─► gridgraph ─► qubo ─► anneal ─► mask
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/ Gaussian similarity, grid graph builder, adjacency, cut edges
//	qubo/      binary quadratic models and the Max-Cut / degree builders
//	anneal/    sampler capability, timing diagnostics, sample sets
//	mask/      row-major decoding of sampled bit strings
//	imageio/   grayscale loading and mask encoding
//	segment/   the composed image → mask solver
//
// This root package only holds the error taxonomy shared by all of them.
package qseg
