package network_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/network"
)

// TestAncestors_Alarm checks closures on the demo network.
func TestAncestors_Alarm(t *testing.T) {
	net := alarm(t)

	assert.Equal(t, []string{"Alarm", "Burglary", "Earthquake"}, net.Ancestors("JohnCalls"))
	assert.Equal(t, []string{"Burglary", "Earthquake"}, net.Ancestors("Alarm"))
	assert.Empty(t, net.Ancestors("Burglary"))
}

// TestAncestors_Unknown yields an empty result for strangers.
func TestAncestors_Unknown(t *testing.T) {
	net := alarm(t)
	assert.Empty(t, net.Ancestors("Cloudy"))
}

// TestAncestors_DiamondDeduplicates counts shared ancestors once.
func TestAncestors_DiamondDeduplicates(t *testing.T) {
	net, err := network.New(
		network.Edge("A", "B"),
		network.Edge("A", "C"),
		network.Edge("B", "D"),
		network.Edge("C", "D"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, net.Ancestors("D"))
}

// TestAncestors_DeepChain walks a long lineage iteratively.
func TestAncestors_DeepChain(t *testing.T) {
	const depth = 2000
	items := make([]network.Item, 0, depth)
	names := make([]string, depth+1)
	for i := 0; i <= depth; i++ {
		// Zero-padded so lexical order matches chain order.
		names[i] = chainName(i)
	}
	for i := 0; i < depth; i++ {
		items = append(items, network.Edge(names[i], names[i+1]))
	}
	net, err := network.New(items...)
	require.NoError(t, err)

	got := net.Ancestors(names[depth])
	assert.Len(t, got, depth)
	assert.Equal(t, names[0], got[0])
}

func chainName(i int) string {
	const digits = "0123456789"
	buf := []byte{'N', '0', '0', '0', '0'}
	for p := 4; p >= 1 && i > 0; p-- {
		buf[p] = digits[i%10]
		i /= 10
	}

	return string(buf)
}

// TestAncestors_MemoStable returns fresh copies; mutating one result must
// not leak into the next.
func TestAncestors_MemoStable(t *testing.T) {
	net := alarm(t)

	first := net.Ancestors("MaryCalls")
	first[0] = "tampered"

	second := net.Ancestors("MaryCalls")
	assert.Equal(t, []string{"Alarm", "Burglary", "Earthquake"}, second)
}

// TestAncestors_Concurrent exercises the memo under parallel readers.
func TestAncestors_Concurrent(t *testing.T) {
	net := alarm(t)
	want := []string{"Alarm", "Burglary", "Earthquake"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, net.Ancestors("JohnCalls"))
				assert.Equal(t, []string{"Burglary", "Earthquake"}, net.Ancestors("Alarm"))
			}
		}()
	}
	wg.Wait()
}
