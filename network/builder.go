package network

import (
	"fmt"

	"github.com/katalvlaran/valveflow/valveset"
)

// Builder accumulates valve definitions. Ids follow the order in which
// names are first mentioned, either as a valve or as a tunnel target.
type Builder struct {
	index   Indexer
	defined map[int]*Node
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{defined: make(map[int]*Node)}
}

// AddValve defines a valve and its tunnels. After the first error every
// further call is ignored and Build reports that error.
func (b *Builder) AddValve(name string, flow int, exits ...string) error {
	if b.err != nil {
		return b.err
	}
	switch {
	case name == "":
		b.err = ErrEmptyName
	case flow < 0:
		b.err = fmt.Errorf("%w: valve %q flow %d", ErrNegativeFlow, name, flow)
	}
	if b.err != nil {
		return b.err
	}

	id := b.index.Map(name)
	if _, dup := b.defined[id]; dup {
		b.err = fmt.Errorf("%w: %q", ErrDuplicateValve, name)
		return b.err
	}

	node := &Node{ID: id, Name: name, Flow: flow, Exits: make([]int, 0, len(exits))}
	for _, exit := range exits {
		if exit == "" {
			b.err = fmt.Errorf("%w: tunnel from %q", ErrEmptyName, name)
			return b.err
		}
		node.Exits = append(node.Exits, b.index.Map(exit))
	}
	b.defined[id] = node

	return nil
}

// Build validates the collected definitions and returns the Network.
//
// Errors: the first AddValve error, ErrUnknownExit if a tunnel target was
// never defined, ErrCapacity if there are more than valveset.Capacity valves.
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	n := b.index.Len()
	for id := 0; id < n; id++ {
		if _, ok := b.defined[id]; !ok {
			name, _ := b.index.Name(id)
			return nil, fmt.Errorf("%w: %q", ErrUnknownExit, name)
		}
	}
	if n > valveset.Capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacity, n, valveset.Capacity)
	}

	net := &Network{nodes: make([]Node, n)}
	for id := 0; id < n; id++ {
		node := b.defined[id]
		net.index.Map(node.Name) // same order, so the same id
		net.nodes[id] = node.clone()
		if node.Flow > 0 {
			net.valuable = append(net.valuable, id)
		}
	}

	return net, nil
}
