// SPDX-License-Identifier: MIT
// Package: valveflow/network
//
// network.go - immutable valve network and its read-only accessors.

package network

import (
	"fmt"
)

// Node is a single valve. Exits lists the ids reachable through one tunnel.
type Node struct {
	ID    int
	Name  string
	Flow  int
	Exits []int
}

// clone returns n with its own copy of Exits.
func (n Node) clone() Node {
	n.Exits = append([]int(nil), n.Exits...)

	return n
}

// Network is an immutable valve network. Build one with Builder or Parse.
// A Network is safe for concurrent readers.
type Network struct {
	nodes    []Node // nodes[i].ID == i
	index    Indexer
	valuable []int // ids with Flow > 0, ascending
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.nodes) }

// Node returns a copy of the valve with the given id.
func (n *Network) Node(id int) (Node, error) {
	if id < 0 || id >= len(n.nodes) {
		return Node{}, fmt.Errorf("%w: id %d", ErrUnknownValve, id)
	}

	return n.nodes[id].clone(), nil
}

// Nodes returns copies of all valves ordered by id.
func (n *Network) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	for i, v := range n.nodes {
		out[i] = v.clone()
	}

	return out
}

// Flow returns the flow rate of id, or 0 for ids outside the network.
func (n *Network) Flow(id int) int {
	if id < 0 || id >= len(n.nodes) {
		return 0
	}

	return n.nodes[id].Flow
}

// Exits returns a copy of the tunnel targets of id.
func (n *Network) Exits(id int) []int {
	if id < 0 || id >= len(n.nodes) {
		return nil
	}

	return append([]int(nil), n.nodes[id].Exits...)
}

// Valuable returns the ids of valves with a positive flow rate, ascending.
// Only these are ever worth opening.
func (n *Network) Valuable() []int {
	return append([]int(nil), n.valuable...)
}

// ID resolves a valve name.
func (n *Network) ID(name string) (int, error) {
	id, ok := n.index.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, name)
	}

	return id, nil
}

// Name returns the valve name for id, or "" if id is unknown.
func (n *Network) Name(id int) string {
	name, _ := n.index.Name(id)

	return name
}

// Names returns all valve names ordered by id.
func (n *Network) Names() []string {
	out := make([]string, len(n.nodes))
	for i, v := range n.nodes {
		out[i] = v.Name
	}

	return out
}
