package search

import (
	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/valveset"
)

// agent is one worker of the dual search. When Dest is a valve, ETA is the
// number of minutes until it has walked there and opened it; ETA == 0 means
// the agent stands on Dest and is due for a new choice.
type agent struct {
	dest Destination
	eta  int
}

// dualState is one node of the two-agent search tree.
type dualState struct {
	timeLeft int
	agents   [2]agent
	opened   valveset.Set
	total    int
}

// choice is a candidate next agent value. fresh marks a destination chosen
// in this transition, as opposed to one carried over from the parent state.
type choice struct {
	next  agent
	fresh bool
}

// Dual returns the largest total two agents, both starting at start and
// sharing the clock and the opened set, can release within budget minutes.
//
// An empty network yields a zero Result. See the package documentation for
// pruning rules, options and errors.
func Dual(net *network.Network, dist *apsp.Matrix, start, budget int, opts ...Option) (Result, error) {
	e, err := newEngine("dual", net, dist, start, budget, opts)
	if err != nil || e == nil {
		return Result{}, err
	}

	var (
		f       frontier[dualState]
		choices [2][]choice
	)
	root := dualState{timeLeft: budget}
	root.agents[0] = agent{dest: Valve(start)}
	root.agents[1] = agent{dest: Valve(start)}
	f.push(root)

	for f.len() > 0 {
		if err = e.tick(); err != nil {
			return e.finish(err)
		}
		s := f.pop()
		e.observe(s.timeLeft, s.total, s.opened)
		if s.timeLeft <= 0 {
			continue
		}

		for a := range s.agents {
			choices[a] = e.choicesFor(s, s.agents[a], choices[a][:0])
		}
		for _, c0 := range choices[0] {
			for _, c1 := range choices[1] {
				if c0.fresh && c1.fresh && c0.next.dest.Kind == DestValve && c0.next.dest == c1.next.dest {
					// One valve, one opener: either agent may take it while
					// the other stands down.
					if err = e.pushJoint(&f, s, c0.next, agent{dest: Remain()}); err != nil {
						return e.finish(err)
					}
					if err = e.pushJoint(&f, s, agent{dest: Remain()}, c1.next); err != nil {
						return e.finish(err)
					}
					continue
				}
				if err = e.pushJoint(&f, s, c0.next, c1.next); err != nil {
					return e.finish(err)
				}
			}
		}
	}

	return e.finish(nil)
}

// pushJoint advances s by the joint choice and pushes the result unless
// both agents remain.
func (e *engine) pushJoint(f *frontier[dualState], s dualState, a0, a1 agent) error {
	next, ok, err := e.advance(s, a0, a1)
	if err != nil {
		return err
	}
	if ok {
		f.push(next)
	}

	return nil
}

// choicesFor appends the possible next values of ag to buf.
func (e *engine) choicesFor(s dualState, ag agent, buf []choice) []choice {
	switch ag.dest.Kind {
	case DestRemain:
		return append(buf, choice{next: ag})
	case DestValve:
		if ag.eta > 0 {
			return append(buf, choice{next: ag})
		}
		from := ag.dest.Node
		for _, v := range e.valuable {
			if s.opened.Contains(v) {
				continue
			}
			d, ok := e.dist.At(from, v)
			if !ok || d+1 >= s.timeLeft {
				continue
			}
			buf = append(buf, choice{next: agent{dest: Valve(v), eta: d + 1}, fresh: true})
		}
		if len(buf) == 0 {
			buf = append(buf, choice{next: agent{dest: Remain()}, fresh: true})
		}

		return buf
	default:
		panic("search: unknown destination kind")
	}
}

// advance applies a joint choice to s: the clock runs until the first agent
// arrives, and every agent that arrives on an unopened valve opens it.
// ok is false when both agents remain, which ends the branch.
func (e *engine) advance(s dualState, a0, a1 agent) (next dualState, ok bool, err error) {
	next = s
	next.agents = [2]agent{a0, a1}

	step := 0
	for _, ag := range next.agents {
		if ag.dest.Kind == DestValve && (!ok || ag.eta < step) {
			step, ok = ag.eta, true
		}
	}
	if !ok {
		return next, false, nil
	}

	next.timeLeft -= step
	for i := range next.agents {
		ag := &next.agents[i]
		if ag.dest.Kind != DestValve {
			continue
		}
		ag.eta -= step
		if ag.eta != 0 || next.opened.Contains(ag.dest.Node) {
			continue
		}
		if next.opened, err = next.opened.With(ag.dest.Node); err != nil {
			return next, false, err
		}
		next.total += next.timeLeft * e.net.Flow(ag.dest.Node)
	}

	return next, true, nil
}
