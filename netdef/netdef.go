// Definition decoding and compilation.

package netdef

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/infer"
	"github.com/katalvlaran/bayes/network"
)

// Parse compiles a YAML definition document into an engine with every
// declared table registered. The engine is not yet prepared, so callers
// may still add or replace tables before the first query freezes it.
func Parse(data []byte, opts ...infer.Option) (*infer.Engine, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDefinition, err)
	}

	return Compile(&def, opts...)
}

// Load reads a definition document from r and compiles it.
func Load(r io.Reader, opts ...infer.Option) (*infer.Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("netdef: read: %w", err)
	}

	return Parse(data, opts...)
}

// LoadPath reads and compiles the definition file at path.
func LoadPath(path string, opts ...infer.Option) (*infer.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netdef: %w", err)
	}

	return Parse(data, opts...)
}

// Compile builds an engine from an already-decoded definition. Useful
// when the definition is assembled in code rather than read from YAML.
func Compile(def *Definition, opts ...infer.Option) (*infer.Engine, error) {
	if def == nil || len(def.Structure) == 0 {
		return nil, fmt.Errorf("%w: structure section is empty", ErrBadDefinition)
	}

	// 1) Structure expressions → network items.
	items := make([]network.Item, 0, len(def.Structure))
	var line string
	for _, line = range def.Structure {
		parsed, err := ParseStructure(line)
		if err != nil {
			return nil, err
		}
		items = append(items, parsed...)
	}
	net, err := network.New(items...)
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", def.Name, err)
	}

	// 2) Register the tables in sorted variable order, so a broken
	//    definition always fails on the same entry.
	eng := infer.New(net, opts...)
	nodes := make([]string, 0, len(def.CPTs))
	for node := range def.CPTs {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	var node string
	for _, node = range nodes {
		if err = registerCPT(eng, node, def.CPTs[node]); err != nil {
			return nil, fmt.Errorf("definition %q: %w", def.Name, err)
		}
	}

	return eng, nil
}

// registerCPT converts one CPT block into rows and hands it to the
// engine, labeled when the block names a scope.
func registerCPT(eng *infer.Engine, node string, c CPT) error {
	rows := make([]factor.Row, len(c.Rows))
	for i, r := range c.Rows {
		rows[i] = factor.Row{Values: r.Values, Weight: r.P}
	}
	if len(c.Scope) > 0 {
		return eng.SetCPTLabeled(node, c.Scope, rows)
	}

	return eng.SetCPT(node, rows)
}
