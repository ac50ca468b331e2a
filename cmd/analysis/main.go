// Command analysis measures false positive rates across a grid of filter
// parameters and compares the sizing expression used by tribloom.New with
// the canonical -(n ln p)/(ln2)^2 form.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	"github.com/jcalabro/tribloom"
)

var (
	itemCounts = []uint64{10, 100, 1_000, 10_000, 100_000}
	fpRates    = []float64{0.1, 0.01, 0.001, 0.0001}
)

// probesPerItem is how many absent keys are tested per expected item.
const probesPerItem = 10

func main() {
	rng := rand.New(rand.NewPCG(0x5eed, 0xb100))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\tp\tm\tm canonical\tk\tseeds\tfill\testimated\tmeasured\tmeasured/p\t")

	for _, n := range itemCounts {
		for _, p := range fpRates {
			if err := measure(w, rng, n, p); err != nil {
				fmt.Fprintln(os.Stderr, "analysis:", err)
				os.Exit(1)
			}
		}
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "analysis:", err)
		os.Exit(1)
	}
}

func measure(w *tabwriter.Writer, rng *rand.Rand, n uint64, p float64) error {
	mCanonical, _, err := tribloom.CanonicalParams(n, p)
	if err != nil {
		return err
	}

	f, err := tribloom.New(n, p, tribloom.WithSeedSource(rng))
	if err != nil {
		return err
	}

	for i := range n {
		f.Add(fmt.Appendf(nil, "member-%d", i))
	}

	probes := n * probesPerItem
	var falsePositives uint64
	for i := range probes {
		if f.Has(fmt.Appendf(nil, "absent-%d", i)) {
			falsePositives++
		}
	}
	measured := float64(falsePositives) / float64(probes)

	fmt.Fprintf(w, "%d\t%g\t%d\t%d\t%d\t%d\t%.4f\t%.6f\t%.6f\t%.2f\t\n",
		n, p, f.M(), mCanonical, f.K(), len(f.Seeds()),
		f.EstimatedFillRatio(), f.EstimatedFalsePositiveRate(), measured, measured/p)
	return nil
}
