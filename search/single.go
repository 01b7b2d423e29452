package search

import (
	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/valveset"
)

// singleState is one node of the single-agent search tree.
// It is copied by value into every branch.
type singleState struct {
	timeLeft int
	pos      int
	opened   valveset.Set
	total    int
	// atStart marks the root: the agent did not walk here to open pos.
	atStart bool
}

// Single returns the largest total one agent starting at start can release
// within budget minutes.
//
// An empty network yields a zero Result. See the package documentation for
// pruning rules, options and errors.
func Single(net *network.Network, dist *apsp.Matrix, start, budget int, opts ...Option) (Result, error) {
	e, err := newEngine("single", net, dist, start, budget, opts)
	if err != nil || e == nil {
		return Result{}, err
	}

	var f frontier[singleState]
	f.push(singleState{timeLeft: budget, pos: start, atStart: true})
	for f.len() > 0 {
		if err = e.tick(); err != nil {
			return e.finish(err)
		}
		s := f.pop()
		e.observe(s.timeLeft, s.total, s.opened)
		if s.timeLeft <= 0 {
			continue
		}
		if err = e.expandSingle(&f, s); err != nil {
			return e.finish(err)
		}
	}

	return e.finish(nil)
}

// expandSingle pushes the successors of s.
func (e *engine) expandSingle(f *frontier[singleState], s singleState) error {
	// A valve walked to is opened before going anywhere else.
	if flow := e.net.Flow(s.pos); flow > 0 && !s.opened.Contains(s.pos) {
		opened, err := s.opened.With(s.pos)
		if err != nil {
			return err
		}
		next := singleState{timeLeft: s.timeLeft - 1, pos: s.pos, opened: opened}
		next.total = s.total + flow*next.timeLeft
		f.push(next)
		if !s.atStart {
			return nil
		}
	}

	for _, v := range e.valuable {
		if v == s.pos || s.opened.Contains(v) {
			continue
		}
		d, ok := e.dist.At(s.pos, v)
		if !ok || d >= s.timeLeft {
			continue
		}
		next := s
		next.timeLeft -= d
		next.pos = v
		next.atStart = false
		f.push(next)
	}

	return nil
}
