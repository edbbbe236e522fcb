package tdigest_test

import (
	"fmt"

	"github.com/glards/tdigest"
)

func Example() {
	td, err := tdigest.New(0.01, 25, tdigest.WithSeed(1))
	if err != nil {
		panic(err)
	}
	for _, x := range []float64{1, 2, 3} {
		if err := td.Add(x); err != nil {
			panic(err)
		}
	}

	fmt.Print("Centroids:")
	fmt.Println(td.Centroids())

	fmt.Print("Count:")
	fmt.Println(td.Count())

	fmt.Print("Quantile(0.5):")
	fmt.Println(td.Quantile(0.5))

	fmt.Print("CDF(2):")
	fmt.Println(td.CDF(2))

	fmt.Print("GenerateQuantiles(4):")
	fmt.Println(td.Summary().GenerateQuantiles(4))

	fmt.Print("Merge:")
	fmt.Println(td.Merge(tdigest.NewDefault()))

	// Output:
	// Centroids:[c{1 x1} c{2 x1} c{3 x1}]
	// Count:3
	// Quantile(0.5):2
	// CDF(2):0.5
	// GenerateQuantiles(4):[1 1.25 2 2.75 3]
	// Merge:merging digests is not implemented
}
