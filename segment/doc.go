// Package segment composes the pipeline: image → grid graph → QUBO →
// annealing sampler → segmentation mask.
//
// AnnealerSolver formulates a grid graph as a model, samples it and merges
// every timing it can see into one Diagnostics mapping:
//
//	problem_formulation_time  building W and the coefficient mappings
//	connection_time           opening the sampler session
//	embedding_time            composing the session onto the topology
//	response_time             waiting for the samples
//	sample_fetch_time         materializing the sample table
//
// plus every key of the service's own timing report. Segment adds the
// lowest-energy decode, cut edges and region count on top.
package segment
