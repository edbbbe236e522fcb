package tdigest

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Rand is the source of randomness used to break ties between equally
// near centroids and to shuffle centroids during compression.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type options struct {
	rng    Rand
	logger logrus.FieldLogger
}

// Option configures a TDigest.
type Option func(*options)

// WithRand sets the random source. Inject a seeded source to make
// tie-breaking and compression reproducible.
func WithRand(rng Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed uses a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return options{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: discard,
	}
}
