package network

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	linePattern = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves?(?: (.+))?$`)
	exitPattern = regexp.MustCompile(`\w+`)
)

// Parse reads one valve definition per line and builds a Network.
// Blank lines are skipped. A valve with no exits is written with nothing
// after "tunnels lead to valves". A line that does not match the expected shape
// yields ErrMalformedLine wrapped with its 1-based line number.
func Parse(r io.Reader) (*Network, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		flow, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: flow %q: %v", ErrMalformedLine, lineNo, m[2], err)
		}
		if err = b.AddValve(m[1], flow, exitPattern.FindAllString(m[3], -1)...); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read input: %w", err)
	}

	return b.Build()
}

// Write renders net in the format Parse reads, one valve per line in id
// order, so Parse(Write(net)) reproduces net.
func Write(w io.Writer, net *Network) error {
	bw := bufio.NewWriter(w)
	for _, node := range net.nodes {
		names := make([]string, len(node.Exits))
		for i, e := range node.Exits {
			names[i] = net.nodes[e].Name
		}
		var err error
		switch len(names) {
		case 0:
			_, err = fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnels lead to valves\n", node.Name, node.Flow)
		case 1:
			_, err = fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnel leads to valve %s\n", node.Name, node.Flow, names[0])
		default:
			_, err = fmt.Fprintf(bw, "Valve %s has flow rate=%d; tunnels lead to valves %s\n", node.Name, node.Flow, strings.Join(names, ", "))
		}
		if err != nil {
			return fmt.Errorf("network: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("network: write: %w", err)
	}

	return nil
}
