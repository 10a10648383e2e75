package factor_test

import (
	"fmt"

	"github.com/katalvlaran/bayes/factor"
)

// ExampleFactor_String renders a one-variable prior as a text table.
func ExampleFactor_String() {
	burglary, _ := factor.New("P(Burglary)", []string{"Burglary"}, []factor.Row{
		{Values: []factor.Value{true}, Weight: 0.001},
		{Values: []factor.Value{false}, Weight: 0.999},
	})
	fmt.Print(burglary)
	// Output:
	//  Burglary | P(Burglary) |
	//  -------- | ----------- |
	//  true     |       0.001 |
	//  false    |       0.999 |
}

// ExampleFactor_Join multiplies a prior into a conditional table and reads
// one joint weight back.
func ExampleFactor_Join() {
	rain, _ := factor.New("P(Rain)", []string{"Rain"}, []factor.Row{
		{Values: []factor.Value{true}, Weight: 0.2},
		{Values: []factor.Value{false}, Weight: 0.8},
	})
	wet, _ := factor.New("P(Wet | Rain)", []string{"Rain", "Wet"}, []factor.Row{
		{Values: []factor.Value{true, true}, Weight: 0.9},
		{Values: []factor.Value{true, false}, Weight: 0.1},
		{Values: []factor.Value{false, true}, Weight: 0.05},
		{Values: []factor.Value{false, false}, Weight: 0.95},
	})

	joint, _ := rain.Join(wet)
	w, _ := joint.Weight(true, true)
	fmt.Printf("P(Rain=true, Wet=true) = %.2f\n", w)
	// Output: P(Rain=true, Wet=true) = 0.18
}

// ExampleFactor_SumOut marginalizes a variable away.
func ExampleFactor_SumOut() {
	joint, _ := factor.New("", []string{"Rain", "Wet"}, []factor.Row{
		{Values: []factor.Value{true, true}, Weight: 0.18},
		{Values: []factor.Value{true, false}, Weight: 0.02},
		{Values: []factor.Value{false, true}, Weight: 0.04},
		{Values: []factor.Value{false, false}, Weight: 0.76},
	})

	wet, _ := joint.SumOut("Rain")
	w, _ := wet.Weight(true)
	fmt.Printf("P(Wet=true) = %.2f\n", w)
	// Output: P(Wet=true) = 0.22
}
