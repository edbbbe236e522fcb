package tdigest

// SumEntry is a centroid together with its position in the cumulative
// weight of a Summary.
type SumEntry struct {
	Mean  float64
	Count float64
	// MinRank is the total weight of all entries before this one.
	MinRank float64
	// MaxRank is MinRank plus Count.
	MaxRank float64
}

// midRank is the rank attributed to the centroid mean: half of its own
// weight lies below it.
func (se SumEntry) midRank() float64 {
	return se.MinRank + se.Count/2
}
