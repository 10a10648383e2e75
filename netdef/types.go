package netdef

import "errors"

var (
	// ErrBadDefinition indicates a document-level problem: invalid YAML
	// or an empty structure section.
	ErrBadDefinition = errors.New("netdef: bad network definition")

	// ErrBadStructure indicates a structure entry the grammar rejects.
	ErrBadStructure = errors.New("netdef: bad structure expression")
)

// Definition is the YAML document root.
//
// Structure entries are edge expressions in the package grammar; CPTs
// maps variable names to their tables. Variables without a table are
// legal until a query actually needs them.
type Definition struct {
	Name      string         `yaml:"name"`
	Structure []string       `yaml:"structure"`
	CPTs      map[string]CPT `yaml:"cpt"`
}

// CPT is one table. Rows are positional over sorted(parents)+node unless
// Scope names an explicit column order.
type CPT struct {
	Scope []string `yaml:"scope,omitempty"`
	Rows  []RowDef `yaml:"rows"`
}

// RowDef is one table row: a value per scope column and its probability.
type RowDef struct {
	Values []any   `yaml:"values"`
	P      float64 `yaml:"p"`
}
