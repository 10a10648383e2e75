// Package netdef loads Bayesian-network definitions from YAML and
// compiles them into ready-to-query inference engines.
//
// What:
//
//   - Definition: the document root (name, structure, cpt sections).
//   - ParseStructure: the edge-expression grammar on its own, for callers
//     assembling networks from strings.
//   - Parse / Load / LoadPath: YAML bytes, an io.Reader or a file path in,
//     an infer.Engine with every table registered out.
//
// A definition file:
//
//	name: alarm
//	structure:
//	  - Burglary -> Alarm
//	  - Earthquake -> Alarm
//	  - Alarm -> [JohnCalls, MaryCalls]
//	cpt:
//	  Burglary:
//	    rows:
//	      - {values: [true],  p: 0.001}
//	      - {values: [false], p: 0.999}
//
// Structure grammar:
//
//	item := side "->" side | name
//	side := name | "[" name ("," name)* "]"
//	name := [A-Za-z0-9_]+ | double-quoted string
//
// A bracketed side fans out: [A, B] -> C declares both A -> C and B -> C.
// Quoted names may contain spaces.
//
// Value typing:
//
// YAML scalars keep their natural Go types: true/false become bool,
// integers int, decimals float64, everything else string. Evidence passed
// to the engine later must use the same types.
//
// Errors (sentinel):
//
//	– ErrBadDefinition  document-level problems (YAML syntax, no structure)
//	– ErrBadStructure   a structure entry the grammar rejects
//
// plus everything the network and infer packages return for bad
// structures and tables, wrapped with the definition name.
//
// Example usage:
//
//	eng, err := netdef.LoadPath("alarm.yaml")
//	if err != nil {
//	    return err
//	}
//	post, err := eng.Query([]string{"Burglary"}, factor.Evidence{"MaryCalls": true})
package netdef
