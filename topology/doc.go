// Package topology generates valve networks of common shapes for tests,
// benchmarks and the valveflow gen command.
//
// What
//
//   - Build(opts, cons...) starts from an empty sketch, applies each
//     Constructor in order and returns a validated *network.Network.
//   - Constructors: Path, Cycle, Star, Grid, Complete, RandomSparse.
//   - Tunnels are always bidirectional. Constructors that reuse a valve name
//     merge into the existing valve, so shapes compose.
//   - Flow rates come from a FlowFn. The first valve (index 0) always gets
//     flow 0 so it can serve as a neutral start.
//
// Options
//
//   - WithSeed(seed) / WithRand(r): RNG for RandomSparse and random flows.
//   - WithIDScheme(fn): valve names; default DoubleLetterID ("AA", "AB", ...).
//   - WithFlowFn(fn), WithConstantFlow(v), WithUniformFlow(min, max).
//
// Determinism
//
//	Same options, same seed and the same constructor order produce the same
//	network, including ids.
//
// Errors
//
//   - ErrTooFewValves, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, ErrOptionViolation, plus network.ErrCapacity when
//     the result exceeds 64 valves.
package topology
