package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/valveflow/valveset"
)

// Sentinel errors for search execution.
var (
	// ErrNilNetwork is returned when a nil network is supplied.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrNilDistances is returned when a nil distance matrix is supplied.
	ErrNilDistances = errors.New("search: distance matrix is nil")

	// ErrDistanceMismatch is returned when the matrix order differs from the network size.
	ErrDistanceMismatch = errors.New("search: distance matrix does not match network")

	// ErrStartOutOfRange is returned when start is not a valve id of the network.
	ErrStartOutOfRange = errors.New("search: start valve out of range")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("search: negative time budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStateBudget is returned when MaxStates expansions did not finish the search.
	ErrStateBudget = errors.New("search: state budget exhausted")
)

// Result is the outcome of a search.
type Result struct {
	// Best is the largest total found.
	Best int

	// Opened is the opened set of the state that reached Best.
	Opened valveset.Set

	// Expanded counts the states popped from the frontier.
	Expanded int
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxStates, if > 0, caps the number of expanded states.
	MaxStates int

	// OnExpand is called for every popped state with its time left and total.
	OnExpand func(timeLeft, total int)

	// OnImprove is called when the running best rises, with the new best
	// and the time left in the state that reached it.
	OnImprove func(best, timeLeft int)

	// Logger receives debug lines at start and finish.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, no state limit,
// no-op hooks and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
		OnExpand:  func(int, int) {},
		OnImprove: func(int, int) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates limits the number of expanded states.
//
//	n > 0:  stop with ErrStateBudget after n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithOnExpand registers a callback run for every popped state.
func WithOnExpand(fn func(timeLeft, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnImprove registers a callback run whenever the best total rises.
func WithOnImprove(fn func(best, timeLeft int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DestinationKind tags the variant held by a Destination.
type DestinationKind uint8

const (
	// DestValve means the agent is heading to (or standing on) Node.
	DestValve DestinationKind = iota
	// DestRemain means the agent has no profitable move left and idles out the clock.
	DestRemain
)

// Destination is where a Dual agent is heading: a valve, or Remain.
type Destination struct {
	Kind DestinationKind
	Node int // meaningful only when Kind == DestValve
}

// Valve returns a Destination pointing at valve id.
func Valve(id int) Destination { return Destination{Kind: DestValve, Node: id} }

// Remain returns the idle Destination.
func Remain() Destination { return Destination{Kind: DestRemain} }

// String renders the destination for logs.
func (d Destination) String() string {
	switch d.Kind {
	case DestValve:
		return fmt.Sprintf("valve(%d)", d.Node)
	case DestRemain:
		return "remain"
	default:
		return fmt.Sprintf("Destination(%d)", d.Kind)
	}
}
