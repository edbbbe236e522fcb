package tdigest

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/beorn7/perks/quantile"
	spenczar "github.com/spenczar/tdigest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	veneur "github.com/stripe/veneur/tdigest"
)

var compareQuantiles = []float64{0.01, 0.1, 0.5, 0.9, 0.99}

// estimator is the common surface of the reference implementations.
type estimator struct {
	add      func(x float64)
	quantile func(q float64) float64
}

func referenceEstimators() map[string]estimator {
	targeted := quantile.NewTargeted(map[float64]float64{
		0.01: 0.001,
		0.1:  0.005,
		0.5:  0.005,
		0.9:  0.005,
		0.99: 0.001,
	})
	merging := veneur.NewMerging(100, false)
	sliced := spenczar.New()

	return map[string]estimator{
		"perks": {
			add:      targeted.Insert,
			quantile: targeted.Query,
		},
		"veneur": {
			add:      func(x float64) { merging.Add(x, 1) },
			quantile: merging.Quantile,
		},
		"spenczar": {
			add:      func(x float64) { sliced.Add(x, 1) },
			quantile: sliced.Quantile,
		},
	}
}

func TestAgainstReferenceEstimators(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	td := newSeeded(t, DefaultDelta, DefaultK, 17)
	refs := referenceEstimators()

	values := make([]float64, 0, 20000)
	for i := 0; i < 20000; i++ {
		x := rng.NormFloat64()
		values = append(values, x)
		require.NoError(t, td.Add(x))
		for _, ref := range refs {
			ref.add(x)
		}
	}
	sort.Float64s(values)

	for _, q := range compareQuantiles {
		exact := values[int(q*float64(len(values)-1))]
		got := td.Quantile(q)
		assert.InDelta(t, exact, got, 0.02, "q=%v", q)

		for name, ref := range refs {
			want := ref.quantile(q)
			assert.InDelta(t, exact, want, 0.1, "%s q=%v", name, q)
			t.Logf("q=%-4v exact=%.4f tdigest=%.4f %s=%.4f", q, exact, got, name, want)
		}
	}
}

func benchmarkAdd(b *testing.B, add func(float64)) {
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 4096)
	for i := range values {
		values[i] = rng.NormFloat64()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		add(values[i%len(values)])
	}
}

func BenchmarkAdd(b *testing.B) {
	b.Run("tdigest", func(b *testing.B) {
		td := NewDefault(WithSeed(1))
		benchmarkAdd(b, func(x float64) { _ = td.Add(x) })
	})
	for name, ref := range referenceEstimators() {
		b.Run(name, func(b *testing.B) {
			benchmarkAdd(b, ref.add)
		})
	}
}

func BenchmarkQuantile(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	td := NewDefault(WithSeed(1))
	for i := 0; i < 50000; i++ {
		_ = td.Add(rng.NormFloat64())
	}
	b.Run("digest", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			td.Quantile(compareQuantiles[i%len(compareQuantiles)])
		}
	})
	b.Run("summary", func(b *testing.B) {
		sum := td.Summary()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sum.Quantile(compareQuantiles[i%len(compareQuantiles)])
		}
	})
}
