package tdigest

import (
	"math"
	"sort"
)

// Summary is an immutable, ranked snapshot of a digest's centroids. It
// answers quantile and rank queries without touching the digest, so it is
// the cheaper way to run many queries against unchanged data.
type Summary struct {
	entries []SumEntry
	min     float64
	max     float64
}

func newSummary(cs []Centroid, min, max float64) *Summary {
	sum := &Summary{
		entries: make([]SumEntry, 0, len(cs)),
		min:     min,
		max:     max,
	}
	cumWeight := 0.0
	for _, c := range cs {
		sum.entries = append(sum.entries, SumEntry{
			Mean:    c.Mean,
			Count:   c.Count,
			MinRank: cumWeight,
			MaxRank: cumWeight + c.Count,
		})
		cumWeight += c.Count
	}
	return sum
}

// Quantile estimates the value below which a fraction q of the total
// weight lies. q is clamped to [0, 1]. The estimate interpolates linearly
// between the smallest observation, each centroid mean placed at its mid
// rank, and the largest observation.
//
// Quantile returns NaN for an empty summary.
func (sum *Summary) Quantile(q float64) float64 {
	if len(sum.entries) == 0 || math.IsNaN(q) {
		return math.NaN()
	}
	q = math.Max(0, math.Min(1, q))

	total := sum.TotalWeight()
	index := q * total
	i := sort.Search(len(sum.entries), func(i int) bool {
		return sum.entries[i].midRank() >= index
	})

	switch i {
	case 0:
		first := sum.entries[0]
		return interpolate(0, sum.min, first.midRank(), first.Mean, index)
	case len(sum.entries):
		last := sum.entries[len(sum.entries)-1]
		return interpolate(last.midRank(), last.Mean, total, sum.max, index)
	}
	lo, hi := sum.entries[i-1], sum.entries[i]
	return interpolate(lo.midRank(), lo.Mean, hi.midRank(), hi.Mean, index)
}

// CDF estimates the fraction of the total weight at or below x.
//
// CDF returns NaN for an empty summary.
func (sum *Summary) CDF(x float64) float64 {
	if len(sum.entries) == 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if x < sum.min {
		return 0
	}
	if x >= sum.max {
		return 1
	}

	total := sum.TotalWeight()
	i := sort.Search(len(sum.entries), func(i int) bool {
		return sum.entries[i].Mean > x
	})

	var rank float64
	switch i {
	case 0:
		first := sum.entries[0]
		rank = interpolate(sum.min, 0, first.Mean, first.midRank(), x)
	case len(sum.entries):
		last := sum.entries[len(sum.entries)-1]
		rank = interpolate(last.Mean, last.midRank(), sum.max, total, x)
	default:
		lo, hi := sum.entries[i-1], sum.entries[i]
		rank = interpolate(lo.Mean, lo.midRank(), hi.Mean, hi.midRank(), x)
	}
	return rank / total
}

// GenerateQuantiles returns numQuantiles+1 values splitting the weight
// into numQuantiles equal parts, starting at the minimum and ending at the
// maximum.
func (sum *Summary) GenerateQuantiles(numQuantiles int64) []float64 {
	output := []float64{}
	if len(sum.entries) == 0 {
		return output
	}
	if numQuantiles < 2 {
		numQuantiles = 2
	}
	for rank := int64(0); rank <= numQuantiles; rank++ {
		output = append(output, sum.Quantile(float64(rank)/float64(numQuantiles)))
	}
	return output
}

// Entries returns the ranked centroids in ascending order of mean.
func (sum *Summary) Entries() []SumEntry {
	out := make([]SumEntry, len(sum.entries))
	copy(out, sum.entries)
	return out
}

// MinValue ...
func (sum *Summary) MinValue() float64 {
	if len(sum.entries) != 0 {
		return sum.min
	}
	return 0
}

// MaxValue ...
func (sum *Summary) MaxValue() float64 {
	if len(sum.entries) != 0 {
		return sum.max
	}
	return 0
}

// TotalWeight ...
func (sum *Summary) TotalWeight() float64 {
	if len(sum.entries) != 0 {
		return sum.entries[len(sum.entries)-1].MaxRank
	}
	return 0
}

// Size ...
func (sum *Summary) Size() int64 {
	return int64(len(sum.entries))
}

// interpolate evaluates the line through (x0, y0) and (x1, y1) at x.
func interpolate(x0, y0, x1, y1, x float64) float64 {
	if x1 <= x0 {
		return y1
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
