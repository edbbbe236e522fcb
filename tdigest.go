// Package tdigest estimates quantiles of a stream of weighted observations.
//
// A TDigest keeps a bounded set of centroids ordered by mean. Centroids
// near the median may grow large while centroids in the tails stay small,
// so extreme quantiles are estimated with lower relative error than
// central ones.
package tdigest

import (
	"fmt"
	"math"
	"strings"

	"github.com/glards/tdigest/orderedmap"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDelta is the compression parameter used by NewDefault.
	DefaultDelta = 0.01
	// DefaultK is the scale factor used by NewDefault.
	DefaultK = 25
)

// TDigest is a streaming quantile estimator. It is not safe for concurrent
// use.
type TDigest struct {
	centroids *orderedmap.Map[float64, *Centroid]
	n         float64
	delta     float64
	k         int
	min       float64
	max       float64

	rng         Rand
	log         logrus.FieldLogger
	compressing bool
}

// New creates an empty digest. Smaller delta keeps more centroids and
// yields better accuracy; the digest is compressed whenever it holds more
// than k/delta centroids.
func New(delta float64, k int, opts ...Option) (*TDigest, error) {
	if !(delta > 0 && delta <= 1) {
		return nil, errors.Wrapf(ErrInvalidDelta, "got %v", delta)
	}
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidScale, "got %d", k)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &TDigest{
		delta: delta,
		k:     k,
		rng:   o.rng,
		log:   o.logger.WithFields(logrus.Fields{"delta": delta, "k": k}),
	}
	t.reset()
	t.min = math.Inf(+1)
	t.max = math.Inf(-1)
	return t, nil
}

// NewDefault creates an empty digest with DefaultDelta and DefaultK.
func NewDefault(opts ...Option) *TDigest {
	t, err := New(DefaultDelta, DefaultK, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *TDigest) reset() {
	t.centroids = orderedmap.New[float64, *Centroid]()
	t.n = 0
}

// Add records a single observation of weight one.
func (t *TDigest) Add(x float64) error {
	return t.Update(x, 1)
}

// Update records the observation x with the given weight.
func (t *TDigest) Update(x, weight float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errors.Wrapf(ErrInvalidValue, "got %v", x)
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		return errors.Wrapf(ErrInvalidWeight, "got %v", weight)
	}

	t.min = math.Min(t.min, x)
	t.max = math.Max(t.max, x)
	t.update(x, weight)
	return nil
}

func (t *TDigest) update(x, weight float64) {
	t.n += weight

	if t.centroids.IsEmpty() {
		t.insert(&Centroid{Mean: x, Count: weight})
		return
	}

	s := t.closest(x)
	limit := t.threshold(t.quantileOf(s))
	if s.Count+weight <= limit {
		dw := math.Min(limit-s.Count, weight)
		t.absorb(s, x, dw)
		weight -= dw
	}

	if weight > 0 {
		t.insert(&Centroid{Mean: x, Count: weight})
	}

	if !t.compressing && float64(t.centroids.Count()) > float64(t.k)/t.delta {
		t.Compress()
	}
}

// insert stores c keyed by its mean. A centroid already stored under the
// same mean takes over c's weight instead of being replaced.
func (t *TDigest) insert(c *Centroid) {
	if existing, ok := t.centroids.Get(c.Mean); ok {
		existing.Update(c.Mean, c.Count)
		return
	}
	t.centroids.Put(c.Mean, c)
}

// absorb moves weight of x into c. The mean is the map key, so c is
// removed before it changes and stored again afterwards.
func (t *TDigest) absorb(c *Centroid, x, weight float64) {
	t.centroids.Delete(c.Mean)
	c.Update(x, weight)
	t.insert(c)
}

// closest returns the centroid whose mean is nearest to x. An exact tie
// between the neighbours below and above x is broken at random. The digest
// must not be empty.
func (t *TDigest) closest(x float64) *Centroid {
	floor, hasFloor := t.centroids.Floor(x)
	ceil, hasCeil := t.centroids.Ceiling(x)

	switch {
	case !hasCeil:
		return floor.Value
	case !hasFloor:
		return ceil.Value
	}

	e := math.Abs(floor.Key-x) - math.Abs(ceil.Key-x)
	switch {
	case e < 0:
		return floor.Value
	case e > 0:
		return ceil.Value
	}
	if t.rng.Intn(2) == 0 {
		return floor.Value
	}
	return ceil.Value
}

// quantileOf returns the normalized rank of c: half its own weight plus the
// weight of every centroid with a smaller mean, over the total weight.
func (t *TDigest) quantileOf(c *Centroid) float64 {
	var before float64
	for mean, ci := range t.centroids.All() {
		if mean >= c.Mean {
			break
		}
		before += ci.Count
	}
	return (c.Count/2 + before) / t.n
}

// threshold is the largest weight a centroid at rank q may hold.
func (t *TDigest) threshold(q float64) float64 {
	return 4 * t.n * t.delta * q * (1 - q)
}

// Compress rebuilds the digest by re-ingesting its centroids in random
// order. The total weight is preserved and the number of centroids never
// grows.
func (t *TDigest) Compress() {
	buf := newBuffer(t.centroids.Count())
	for _, c := range t.centroids.All() {
		buf.push(c.Mean, c.Count)
	}
	buf.shuffle(t.rng)

	before := t.centroids.Count()
	t.reset()
	t.compressing = true
	for _, e := range buf.entries() {
		t.update(e.value, e.weight)
	}
	t.compressing = false

	t.log.WithFields(logrus.Fields{
		"before": before,
		"after":  t.centroids.Count(),
		"weight": t.n,
	}).Debug("compressed digest")
}

// Merge is not implemented and always returns ErrMergeNotImplemented.
func (t *TDigest) Merge(other *TDigest) error {
	return ErrMergeNotImplemented
}

// Quantile estimates the value at quantile q in [0, 1]. It returns NaN if
// nothing has been recorded.
func (t *TDigest) Quantile(q float64) float64 {
	return t.Summary().Quantile(q)
}

// CDF estimates the fraction of recorded weight at or below x. It returns
// NaN if nothing has been recorded.
func (t *TDigest) CDF(x float64) float64 {
	return t.Summary().CDF(x)
}

// Summary returns a ranked snapshot of the current centroids.
func (t *TDigest) Summary() *Summary {
	return newSummary(t.Centroids(), t.min, t.max)
}

// Centroids returns copies of the centroids in ascending order of mean.
func (t *TDigest) Centroids() []Centroid {
	out := make([]Centroid, 0, t.centroids.Count())
	for _, c := range t.centroids.All() {
		out = append(out, *c)
	}
	return out
}

// Count returns the total weight recorded.
func (t *TDigest) Count() float64 {
	return t.n
}

// Size returns the number of centroids.
func (t *TDigest) Size() int {
	return t.centroids.Count()
}

// Min returns the smallest value recorded, or +Inf if none.
func (t *TDigest) Min() float64 {
	return t.min
}

// Max returns the largest value recorded, or -Inf if none.
func (t *TDigest) Max() float64 {
	return t.max
}

// Delta returns the compression parameter.
func (t *TDigest) Delta() float64 {
	return t.delta
}

// K returns the scale factor.
func (t *TDigest) K() int {
	return t.k
}

func (t *TDigest) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tdigest{n=%g centroids=%d}", t.n, t.centroids.Count())
	for _, c := range t.centroids.All() {
		sb.WriteString(" ")
		sb.WriteString(c.String())
	}
	return sb.String()
}
