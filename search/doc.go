// Package search finds the largest total pressure release achievable on a
// valve network by one agent or by two agents sharing a clock.
//
// What
//
//   - Single explores states (time left, position, opened set, total) for one
//     agent with a time budget.
//   - Dual explores joint states for two agents that share the clock and the
//     opened set, each travelling towards its own Destination with its own ETA.
//   - Opening a valve costs one minute and credits flow × minutes left after it.
//
// Pruning
//
//   - Single: after walking to an unopened valve with positive flow, the only
//     move is to open it. Otherwise the agent walks straight to another
//     unopened positive-flow valve that can still be reached (distance < time
//     left). A valuable start valve may be opened first or left for later.
//   - Dual: a due agent picks any unopened positive-flow valve whose distance
//     plus the opening minute is below the time left; if none exists its
//     destination becomes Remain and it idles for the rest of the run. Both
//     agents never newly pick the same valve in one transition: when both
//     would, one takes it and the other gets Remain.
//   - Valves with zero flow are used only as transit points.
//   - Unreachable valves never enter a branch.
//
// Frontier
//
//	States live on an explicit worklist, never on the call stack, so memory
//	and not recursion depth bounds the search. Visiting order does not affect
//	the result: every popped state updates the running best, because the total
//	never decreases along a path.
//
// Options
//
//   - DefaultOptions(): background context, no state limit, no-op hooks, discard logger.
//   - WithContext(ctx):    cancellation, checked every 4096 expansions.
//   - WithMaxStates(n):    stop with ErrStateBudget after n expansions (0 = no limit).
//   - WithOnExpand(fn):    called for every popped state.
//   - WithOnImprove(fn):   called whenever the running best increases.
//   - WithLogger(l):       debug lines at start and finish.
//
// Errors
//
//   - ErrNilNetwork, ErrNilDistances, ErrDistanceMismatch for malformed inputs.
//   - ErrStartOutOfRange if start is not a valve id.
//   - ErrNegativeBudget for a negative time budget.
//   - ErrOptionViolation for an invalid Option.
//   - ErrStateBudget when MaxStates is exhausted; the Result then holds the
//     best value found so far.
//   - ctx.Err() on cancellation, also with the best-so-far Result.
//
// Complexity
//
//	Exponential in the number of positive-flow valves; Dual branches on the
//	product of both agents' candidate counts. Both are meant for networks
//	with a handful of valuable valves among a few dozen transit ones.
package search
