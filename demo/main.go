package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/glards/tdigest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	delta     float64
	k         int
	n         int
	seed      int64
	dist      string
	quantiles []float64
	verbose   bool
)

var distributions = map[string]func(*rand.Rand) float64{
	"uniform":     (*rand.Rand).Float64,
	"normal":      (*rand.Rand).NormFloat64,
	"exponential": (*rand.Rand).ExpFloat64,
	"sequential":  nil,
}

func main() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Feed a synthetic distribution into a t-digest and print its quantiles",
		RunE:  run,
	}
	cmd.Flags().Float64Var(&delta, "delta", tdigest.DefaultDelta, "compression parameter in (0, 1]")
	cmd.Flags().IntVar(&k, "k", tdigest.DefaultK, "scale factor; the digest is compressed above k/delta centroids")
	cmd.Flags().IntVar(&n, "n", 100000, "number of observations")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the data and the digest")
	cmd.Flags().StringVar(&dist, "dist", "normal", "distribution: uniform, normal, exponential or sequential")
	cmd.Flags().Float64SliceVar(&quantiles, "quantiles", []float64{0, 0.01, 0.25, 0.5, 0.75, 0.99, 1}, "quantiles to report")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log compressions")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	gen, ok := distributions[dist]
	if !ok {
		return errors.Errorf("unknown distribution %q", dist)
	}

	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	td, err := tdigest.New(delta, k, tdigest.WithSeed(seed), tdigest.WithLogger(logger))
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		x := float64(i)
		if gen != nil {
			x = gen(rng)
		}
		if err := td.Add(x); err != nil {
			return errors.Wrapf(err, "observation %d", i)
		}
	}
	logger.WithFields(logrus.Fields{
		"count":     td.Count(),
		"centroids": td.Size(),
	}).Info("ingested")

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "quantile\tvalue")
	sum := td.Summary()
	for _, q := range quantiles {
		fmt.Fprintf(tw, "%g\t%g\n", q, sum.Quantile(q))
	}
	return tw.Flush()
}
