// Package network defines structure items and the sentinel errors of the
// structure builder.
package network

import "errors"

// Sentinel errors returned by New.
var (
	// ErrEmptyVariable indicates that a structure item names an empty
	// variable.
	ErrEmptyVariable = errors.New("network: variable name must not be empty")

	// ErrCyclicGraph indicates that the declared structure contains a
	// cycle and therefore is not a Bayesian network.
	ErrCyclicGraph = errors.New("network: structure contains a cycle")
)

// Item declares one piece of network structure. Items are applied in the
// order given to New; declaring the same node or edge twice is harmless.
type Item func(*draft)

// Node declares a standalone variable. Variables mentioned by Edge or
// Edges need no separate Node item.
func Node(name string) Item {
	return func(d *draft) {
		d.addNode(name)
	}
}

// Edge declares one parent→child dependency.
func Edge(parent, child string) Item {
	return func(d *draft) {
		d.addEdge(parent, child)
	}
}

// Edges declares the Cartesian expansion of the two lists: every parent
// gains every child. Edges([]string{"A", "B"}, []string{"C", "D"}) is the
// four edges A→C, A→D, B→C, B→D.
func Edges(parents, children []string) Item {
	return func(d *draft) {
		var p, c string
		for _, p = range parents {
			for _, c = range children {
				d.addEdge(p, c)
			}
		}
	}
}

// draft accumulates structure while items apply. The first error sticks;
// later items still run but cannot clear it.
type draft struct {
	nodes   map[string]struct{}
	parents map[string]map[string]struct{}
	err     error
}

func newDraft() *draft {
	return &draft{
		nodes:   make(map[string]struct{}),
		parents: make(map[string]map[string]struct{}),
	}
}

func (d *draft) addNode(name string) {
	if name == "" {
		if d.err == nil {
			d.err = ErrEmptyVariable
		}

		return
	}
	d.nodes[name] = struct{}{}
}

func (d *draft) addEdge(parent, child string) {
	d.addNode(parent)
	d.addNode(child)
	if d.err != nil {
		return
	}
	set, ok := d.parents[child]
	if !ok {
		set = make(map[string]struct{})
		d.parents[child] = set
	}
	set[parent] = struct{}{}
}
