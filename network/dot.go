// Graphviz export.

package network

import (
	"fmt"
	"strings"
)

// DOT renders the structure as a Graphviz digraph: every variable as a
// quoted node statement, every edge as parent -> child, both lexically
// sorted. Pipe the output through `dot -Tsvg` for a picture.
func (n *Network) DOT() string {
	var b strings.Builder
	b.WriteString("digraph network {\n")
	b.WriteString("  rankdir=TB;\n")
	var v, c string
	for _, v = range n.nodes {
		fmt.Fprintf(&b, "  %q;\n", v)
	}
	for _, v = range n.nodes {
		for _, c = range n.children[v] {
			fmt.Fprintf(&b, "  %q -> %q;\n", v, c)
		}
	}
	b.WriteString("}\n")

	return b.String()
}
