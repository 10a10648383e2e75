package netdef_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/infer"
	"github.com/katalvlaran/bayes/netdef"
	"github.com/katalvlaran/bayes/network"
)

// TestLoadPath_Alarm compiles the shipped demo file and reproduces the
// classic posterior, passing options through to the engine.
func TestLoadPath_Alarm(t *testing.T) {
	eng, err := netdef.LoadPath("testdata/alarm.yaml")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Burglary", "Earthquake", "Alarm", "JohnCalls", "MaryCalls"},
		eng.Network().Order(),
	)

	// The labeled MaryCalls block lands in canonical column order.
	mary, err := eng.CPT("MaryCalls")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alarm", "MaryCalls"}, mary.Scope())
	w, ok := mary.Weight(true, true)
	require.True(t, ok)
	assert.InDelta(t, 0.70, w, 0)

	post, err := eng.Query([]string{"Burglary"}, factor.Evidence{
		"JohnCalls": true,
		"MaryCalls": true,
	})
	require.NoError(t, err)
	wTrue, ok := post.Weight(true)
	require.True(t, ok)
	assert.InDelta(t, 0.2841718353643929, wTrue, 1e-9)

	fast, err := netdef.LoadPath("testdata/alarm.yaml",
		infer.WithOrderHeuristic(infer.OrderMinDegree))
	require.NoError(t, err)
	post2, err := fast.Query([]string{"Burglary"}, factor.Evidence{
		"JohnCalls": true,
		"MaryCalls": true,
	})
	require.NoError(t, err)
	assert.True(t, factor.Equal(post, post2, 1e-9))
}

// TestParse_InlineDocument compiles a two-variable chain from a string.
func TestParse_InlineDocument(t *testing.T) {
	const doc = `
name: sprinkler
structure:
  - Rain -> WetGrass
cpt:
  Rain:
    rows:
      - {values: [true],  p: 0.2}
      - {values: [false], p: 0.8}
  WetGrass:
    rows:
      - {values: [true, true],  p: 0.9}
      - {values: [true, false], p: 0.1}
      - {values: [false, true],  p: 0.05}
      - {values: [false, false], p: 0.95}
`
	eng, err := netdef.Parse([]byte(doc))
	require.NoError(t, err)

	post, err := eng.Query([]string{"WetGrass"}, nil)
	require.NoError(t, err)
	w, ok := post.Weight(true)
	require.True(t, ok)
	// 0.2·0.9 + 0.8·0.05
	assert.InDelta(t, 0.22, w, 1e-12)
}

// TestParse_ScalarTyping keeps the natural Go type of every YAML scalar.
func TestParse_ScalarTyping(t *testing.T) {
	const doc = `
structure:
  - Severity
cpt:
  Severity:
    rows:
      - {values: [0],    p: 0.5}
      - {values: [2.5],  p: 0.3}
      - {values: [high], p: 0.1}
      - {values: [true], p: 0.1}
`
	eng, err := netdef.Parse([]byte(doc))
	require.NoError(t, err)
	cpt, err := eng.CPT("Severity")
	require.NoError(t, err)

	for _, tc := range []struct {
		v    factor.Value
		want float64
	}{
		{0, 0.5},
		{2.5, 0.3},
		{"high", 0.1},
		{true, 0.1},
	} {
		w, ok := cpt.Weight(tc.v)
		require.True(t, ok, "value %#v", tc.v)
		assert.InDelta(t, tc.want, w, 0)
	}

	// Same number, different dynamic type: no such row.
	_, ok := cpt.Weight(0.0)
	assert.False(t, ok)
}

// TestCompile_Programmatic builds the definition in code instead of YAML.
func TestCompile_Programmatic(t *testing.T) {
	def := &netdef.Definition{
		Name:      "coin",
		Structure: []string{"Coin"},
		CPTs: map[string]netdef.CPT{
			"Coin": {Rows: []netdef.RowDef{
				{Values: []any{"heads"}, P: 0.5},
				{Values: []any{"tails"}, P: 0.5},
			}},
		},
	}

	eng, err := netdef.Compile(def)
	require.NoError(t, err)
	post, err := eng.Query([]string{"Coin"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, post.Len())
}

// TestParse_BadYAML wraps decoder failures in ErrBadDefinition.
func TestParse_BadYAML(t *testing.T) {
	_, err := netdef.Parse([]byte("structure: ["))
	assert.ErrorIs(t, err, netdef.ErrBadDefinition)
}

// TestParse_EmptyStructure rejects documents without a structure section.
func TestParse_EmptyStructure(t *testing.T) {
	_, err := netdef.Parse([]byte("name: hollow"))
	assert.ErrorIs(t, err, netdef.ErrBadDefinition)

	_, err = netdef.Compile(nil)
	assert.ErrorIs(t, err, netdef.ErrBadDefinition)
}

// TestParse_BadStructureExpression surfaces the grammar error.
func TestParse_BadStructureExpression(t *testing.T) {
	_, err := netdef.Parse([]byte("structure:\n  - \"A ->\""))
	assert.ErrorIs(t, err, netdef.ErrBadStructure)
}

// TestParse_CycleSurfaces keeps the network's cycle error inspectable.
func TestParse_CycleSurfaces(t *testing.T) {
	_, err := netdef.Parse([]byte("structure:\n  - A -> B\n  - B -> A"))
	assert.ErrorIs(t, err, network.ErrCyclicGraph)
}

// TestParse_UnknownCPTVariable rejects tables for undeclared variables.
func TestParse_UnknownCPTVariable(t *testing.T) {
	const doc = `
structure:
  - A -> B
cpt:
  C:
    rows:
      - {values: [true], p: 1}
`
	_, err := netdef.Parse([]byte(doc))
	assert.ErrorIs(t, err, infer.ErrUnknownVariable)
}

// TestParse_LabeledScopeMismatch surfaces the engine's label check.
func TestParse_LabeledScopeMismatch(t *testing.T) {
	const doc = `
structure:
  - A -> B
cpt:
  B:
    scope: [B, C]
    rows:
      - {values: [true, true], p: 1}
`
	_, err := netdef.Parse([]byte(doc))
	assert.ErrorIs(t, err, infer.ErrLabelMismatch)
}

// TestLoad_Reader accepts any reader and propagates read failures.
func TestLoad_Reader(t *testing.T) {
	eng, err := netdef.Load(strings.NewReader("structure:\n  - A"))
	require.NoError(t, err)
	assert.True(t, eng.Network().HasNode("A"))

	_, err = netdef.Load(iotest.ErrReader(errors.New("broken pipe")))
	assert.ErrorContains(t, err, "broken pipe")
}

// TestLoadPath_Missing keeps the not-exist error inspectable.
func TestLoadPath_Missing(t *testing.T) {
	_, err := netdef.LoadPath("testdata/absent.yaml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
