package tdigest

import "fmt"

// Centroid summarizes a cluster of observations by their weighted mean and
// total weight.
type Centroid struct {
	Mean  float64
	Count float64
}

// Update folds x with the given weight into the running mean.
func (c *Centroid) Update(x, weight float64) {
	c.Count += weight
	c.Mean += weight * (x - c.Mean) / c.Count
}

func (c Centroid) String() string {
	return fmt.Sprintf("c{%g x%g}", c.Mean, c.Count)
}
