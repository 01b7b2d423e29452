// Package network defines the immutable valve network consumed by the
// distance and search packages, plus the tools that produce one.
//
// What
//
//   - Indexer assigns each valve name a dense, stable integer id in
//     first-seen order.
//   - Node is one valve: id, name, flow rate and the ids of its tunnels.
//   - Network is the read-only set of Nodes indexed by id in [0, Len()).
//   - Builder collects valve definitions and validates them into a Network.
//   - Parse reads the line-oriented text form:
//
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// Invariants
//
//   - Len() ≤ valveset.Capacity (64); larger inputs fail with ErrCapacity
//     at Build time, before any search can start.
//   - Every tunnel endpoint names a defined valve.
//   - Flow rates are non-negative.
//   - Tunnels are bidirectional in this domain, but Network stores exits as
//     given; distance computation follows them as listed.
//
// Errors
//
//   - ErrEmptyName, ErrNegativeFlow, ErrDuplicateValve, ErrUnknownExit,
//     ErrCapacity from Builder.
//   - ErrMalformedLine from Parse (wrapped with the line number).
//   - ErrUnknownValve from name/id lookups.
package network
