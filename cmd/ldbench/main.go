// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ldbench drives the LD engine against synthetic genotype data
// to report throughput and r² summary statistics. It does not read or
// write any variant file format; callers wire real genotype sources
// through the genotype package directly.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tomahawk-go/ldcore/genotype"
	"github.com/tomahawk-go/ldcore/gtsimd"
	"github.com/tomahawk-go/ldcore/ldengine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		samples  int
		sites    int
		phased   bool
		workers  int
		altFreq  float64
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "ldbench",
		Short: "Benchmark pairwise linkage-disequilibrium computation over synthetic genotypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, samples, sites, phased, workers, altFreq, seed)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 2000, "diploid samples per site")
	cmd.Flags().IntVar(&sites, "sites", 200, "number of sites to generate; all C(sites,2) pairs are computed")
	cmd.Flags().BoolVar(&phased, "phased", true, "treat comparisons as phased")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().Float64Var(&altFreq, "alt-freq", 0.2, "synthetic ALT allele frequency")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func runBench(cmd *cobra.Command, samples, numSites int, phased bool, workers int, altFreq float64, seed int64) error {
	if samples <= 0 || numSites < 2 {
		return fmt.Errorf("ldbench: samples must be > 0 and sites must be >= 2")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "dispatch tier: %s (width %d bytes)\n", gtsimd.CurrentName(), gtsimd.CurrentWidth())

	rng := rand.New(rand.NewSource(seed))
	siteList := make([]*genotype.Site, numSites)
	for i := range siteList {
		siteList[i] = randomSite(rng, samples, altFreq)
	}

	pairs := make([]ldengine.Pair, 0, numSites*(numSites-1)/2)
	for i := 0; i < numSites; i++ {
		for j := i + 1; j < numSites; j++ {
			pairs = append(pairs, ldengine.Pair{A: siteList[i], B: siteList[j], Phased: phased})
		}
	}

	engine := ldengine.New(workers)
	defer engine.Close()

	start := time.Now()
	outcomes, errs := engine.ComputeBatch(pairs)
	elapsed := time.Since(start)

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("ldbench: batch compute: %w", err)
		}
	}

	summary := ldengine.Summarize(outcomes)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pairs: %d\n", len(pairs))
	fmt.Fprintf(out, "elapsed: %s (%.1f pairs/ms)\n", elapsed, float64(len(pairs))/float64(elapsed.Milliseconds()+1))
	fmt.Fprintf(out, "informative pairs: %d\n", summary.Count)
	fmt.Fprintf(out, "mean r^2: %.6f  stddev r^2: %.6f  median r^2: %.6f\n", summary.MeanR2, summary.StddevR2, summary.MedianR2)
	for strat, n := range summary.StrategyUse {
		fmt.Fprintf(out, "strategy %-10s %d\n", strat, n)
	}
	return nil
}

func randomSite(rng *rand.Rand, samples int, altFreq float64) *genotype.Site {
	calls := make([][2]genotype.Allele, samples)
	for i := range calls {
		calls[i] = [2]genotype.Allele{randomAllele(rng, altFreq), randomAllele(rng, altFreq)}
	}
	site, err := genotype.Encode(samples, calls)
	if err != nil {
		// samples always matches len(calls); Encode cannot fail here.
		panic(err)
	}
	return site
}

func randomAllele(rng *rand.Rand, altFreq float64) genotype.Allele {
	if rng.Float64() < 0.01 {
		return genotype.Missing
	}
	if rng.Float64() < altFreq {
		return genotype.Alt
	}
	return genotype.Ref
}
