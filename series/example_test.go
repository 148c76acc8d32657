package series_test

import (
	"fmt"

	"github.com/berquist/simd-examples/series"
)

func ExampleEvaluate() {
	s := series.Series{
		{A: 1, B: 0, C: 0},
	}

	fmt.Printf("%.6f\n", series.Evaluate(1989, s))
	// Output:
	// 1.000000
}

func ExampleEvaluateVector() {
	s := series.Series{
		{A: 1.5, B: 0, C: 0},
		{A: 0.25, B: 0, C: 0},
		{A: 0.125, B: 0, C: 0},
		{A: 0.0625, B: 0, C: 0},
		{A: 0.5, B: 0, C: 0},
	}

	fmt.Printf("%.4f\n", series.EvaluateVector(10, s))
	// Output:
	// 2.4375
}

func ExampleStrategies() {
	for _, s := range series.Strategies() {
		fmt.Println(s)
	}
	// Output:
	// naive
	// inline
	// vector
	// vector-inner
}
