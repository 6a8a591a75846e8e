package ldengine

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BatchSummary reports aggregate r² statistics across a batch of
// outcomes, skipping pairs the engine marked Skipped (monomorphic or
// otherwise uninformative pairs contribute no r² value).
type BatchSummary struct {
	Count       int
	MeanR2      float64
	StddevR2    float64
	MedianR2    float64
	StrategyUse map[string]int
}

// Summarize computes a BatchSummary over a slice of Outcomes.
func Summarize(outcomes []Outcome) BatchSummary {
	r2s := make([]float64, 0, len(outcomes))
	strategyUse := make(map[string]int)
	for _, o := range outcomes {
		strategyUse[o.Strategy.String()]++
		if o.Skipped {
			continue
		}
		r2s = append(r2s, o.Result.R2)
	}

	summary := BatchSummary{Count: len(r2s), StrategyUse: strategyUse}
	if len(r2s) == 0 {
		return summary
	}

	mean, stddev := stat.MeanStdDev(r2s, nil)
	summary.MeanR2 = mean
	summary.StddevR2 = stddev

	sorted := append([]float64(nil), r2s...)
	sort.Float64s(sorted)
	summary.MedianR2 = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return summary
}
