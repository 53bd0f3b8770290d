// Package anneal submits binary quadratic models to an annealing sampler
// and reports how long each phase of the round-trip took.
//
// The sampler is an injected capability:
//
//   - Connector.Connect opens a session for a token and hardware topology
//     (measured as connection_time).
//   - Composite.Compose wraps the session, e.g. with minor embedding onto
//     the hardware graph (embedding_time).
//   - Sampler.Sample returns the SampleSet (response_time).
//
// Solve runs the three phases with an explicit Config: no ambient sampler
// state, no retry unless Config.Retries > 0, no timeout unless the context
// or Config.Timeout carries one. All failures are returned as
// *ServiceError, which matches qseg.ErrService under errors.Is.
//
// FixedConnector serves a predetermined sample set for tests;
// ReplayConnector serves one recorded to a JSON file.
package anneal
