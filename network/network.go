// Construction and read access for Network.

package network

import (
	"sort"
	"sync"
)

// Network is the immutable directed acyclic structure of a Bayesian
// network. All adjacency is fixed and lexically sorted at construction;
// the zero value is unusable, always build through New.
//
// A Network is safe for concurrent use: readers never mutate anything but
// the internal ancestor memo, which carries its own lock.
type Network struct {
	nodes    []string            // all variables, lexical order
	parents  map[string][]string // child → sorted parents
	children map[string][]string // parent → sorted children
	order    []string            // topological order, lexical tie-breaks

	mu        sync.RWMutex        // guards ancestors
	ancestors map[string][]string // memoized transitive parent closures
}

// New folds the structure items into a Network.
//
// Duplicate nodes and edges collapse silently. The build fails with
// ErrEmptyVariable when any item names an empty variable and with
// ErrCyclicGraph when the edges admit no topological order (a self-loop
// is the smallest such cycle).
func New(items ...Item) (*Network, error) {
	// 1) Apply every item to the draft.
	d := newDraft()
	var it Item
	for _, it = range items {
		if it != nil {
			it(d)
		}
	}
	if d.err != nil {
		return nil, d.err
	}

	// 2) Freeze the node set and adjacency, everything lexically sorted.
	n := &Network{
		nodes:     make([]string, 0, len(d.nodes)),
		parents:   make(map[string][]string, len(d.parents)),
		children:  make(map[string][]string, len(d.parents)),
		ancestors: make(map[string][]string),
	}
	for v := range d.nodes {
		n.nodes = append(n.nodes, v)
	}
	sort.Strings(n.nodes)

	for child, set := range d.parents {
		ps := make([]string, 0, len(set))
		for parent := range set {
			ps = append(ps, parent)
			n.children[parent] = append(n.children[parent], child)
		}
		sort.Strings(ps)
		n.parents[child] = ps
	}
	for parent := range n.children {
		sort.Strings(n.children[parent])
	}

	// 3) Fix the topological order; this is also the acyclicity check.
	order, err := topologicalOrder(n.nodes, n.parents, n.children)
	if err != nil {
		return nil, err
	}
	n.order = order

	return n, nil
}

// Nodes returns all variables in lexical order.
func (n *Network) Nodes() []string {
	return append([]string(nil), n.nodes...)
}

// Order returns the topological order fixed at construction: every parent
// precedes its children, ties broken lexically.
func (n *Network) Order() []string {
	return append([]string(nil), n.order...)
}

// HasNode reports whether v is a variable of the network.
func (n *Network) HasNode(v string) bool {
	i := sort.SearchStrings(n.nodes, v)

	return i < len(n.nodes) && n.nodes[i] == v
}

// Parents returns the sorted direct parents of v. Root and unknown
// variables yield an empty result.
func (n *Network) Parents(v string) []string {
	return append([]string(nil), n.parents[v]...)
}

// Children returns the sorted direct children of v. Leaf and unknown
// variables yield an empty result.
func (n *Network) Children(v string) []string {
	return append([]string(nil), n.children[v]...)
}
