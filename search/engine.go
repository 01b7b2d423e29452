package search

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/valveflow/apsp"
	"github.com/katalvlaran/valveflow/network"
	"github.com/katalvlaran/valveflow/valveset"
)

// checkEvery is the number of expansions between two context checks.
const checkEvery = 4096

// engine holds the read-only inputs and the running best shared by Single and Dual.
type engine struct {
	mode     string
	net      *network.Network
	dist     *apsp.Matrix
	valuable []int
	opts     Options
	ctx      context.Context
	started  time.Time

	best       int
	bestOpened valveset.Set
	expanded   int
}

// newEngine validates inputs and options. A nil engine with a nil error
// means the network is empty and the answer is trivially zero.
func newEngine(mode string, net *network.Network, dist *apsp.Matrix, start, budget int, opts []Option) (*engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if net == nil {
		return nil, ErrNilNetwork
	}
	if dist == nil {
		return nil, ErrNilDistances
	}
	if dist.Len() != net.Len() {
		return nil, fmt.Errorf("%w: %d distances for %d valves", ErrDistanceMismatch, dist.Len(), net.Len())
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	if net.Len() == 0 {
		return nil, nil
	}
	if start < 0 || start >= net.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, net.Len())
	}

	e := &engine{
		mode:     mode,
		net:      net,
		dist:     dist,
		valuable: net.Valuable(),
		opts:     o,
		ctx:      o.Ctx,
		started:  time.Now(),
	}
	e.opts.Logger.Debug("search started",
		"mode", mode,
		"valves", net.Len(),
		"valuable", len(e.valuable),
		"start", net.Name(start),
		"budget", budget,
	)

	return e, nil
}

// tick counts one expansion and enforces the state budget and cancellation.
func (e *engine) tick() error {
	e.expanded++
	if e.opts.MaxStates > 0 && e.expanded > e.opts.MaxStates {
		e.expanded--
		return fmt.Errorf("%w: %d states", ErrStateBudget, e.opts.MaxStates)
	}
	if e.expanded%checkEvery == 0 {
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}
	}

	return nil
}

// observe records a popped state against the running best.
func (e *engine) observe(timeLeft, total int, opened valveset.Set) {
	e.opts.OnExpand(timeLeft, total)
	if total > e.best {
		e.best = total
		e.bestOpened = opened
		e.opts.OnImprove(total, timeLeft)
	}
}

// finish builds the Result and logs the outcome of the run.
func (e *engine) finish(err error) (Result, error) {
	res := Result{Best: e.best, Opened: e.bestOpened, Expanded: e.expanded}
	log := e.opts.Logger.With(
		"mode", e.mode,
		"best", res.Best,
		"expanded", res.Expanded,
		"elapsed", time.Since(e.started),
	)
	if err != nil {
		log.Debug("search stopped", "err", err)
		return res, err
	}
	log.Debug("search finished", "opened", res.Opened.String())

	return res, nil
}
