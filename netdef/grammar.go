// Structure-expression grammar.
//
// One parser, built once at init, shared by every ParseStructure call.
// Parsers are pure functions over immutable state, so the shared value is
// safe for concurrent use.

package netdef

import (
	"fmt"
	"strings"

	p "github.com/vektah/goparsify"

	"github.com/katalvlaran/bayes/network"
)

// structureLine is the parse result of one structure expression: either
// an edge set (parents → children) or a single bare node.
type structureLine struct {
	parents  []string
	children []string
	node     string
}

// structureItem parses one full structure expression.
var structureItem p.Parser

func init() {
	bare := p.Chars("A-Za-z0-9_", 1)
	quoted := p.StringLit(`"`)
	name := p.Any(bare, quoted).Map(func(n *p.Result) {
		n.Result = n.Token
	})

	// [A, B] – brackets commit the parse, so a malformed list reports the
	// list error instead of falling back to the bare-node branch.
	group := p.Seq("[", p.Cut(), p.Many(name, ","), "]").Map(func(n *p.Result) {
		parts := n.Child[2].Child
		names := make([]string, len(parts))
		for i := range parts {
			names[i] = parts[i].Result.(string)
		}
		n.Result = names
	})
	side := p.Any(group, name.Map(func(n *p.Result) {
		n.Result = []string{n.Result.(string)}
	}))

	edge := p.Seq(side, "->", p.Cut(), side).Map(func(n *p.Result) {
		n.Result = structureLine{
			parents:  n.Child[0].Result.([]string),
			children: n.Child[3].Result.([]string),
		}
	})
	node := name.Map(func(n *p.Result) {
		n.Result = structureLine{node: n.Result.(string)}
	})
	structureItem = p.Any(edge, node)
}

// ParseStructure parses one structure expression into network items:
//
//	ParseStructure("Alarm -> [JohnCalls, MaryCalls]")
//	ParseStructure(`"vacation mode"`)
//
// An edge expression yields one Edges item covering the full parent ×
// child fan-out; a bare name yields a Node item. Errors wrap
// ErrBadStructure and carry the offending expression plus the parser's
// position message.
func ParseStructure(s string) ([]network.Item, error) {
	result, err := p.Run(structureItem, strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadStructure, s, err)
	}

	line := result.(structureLine)
	if line.parents == nil {
		return []network.Item{network.Node(line.node)}, nil
	}

	return []network.Item{network.Edges(line.parents, line.children)}, nil
}
