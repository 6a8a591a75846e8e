package ldengine

import (
	"fmt"

	"github.com/tomahawk-go/ldcore/genotype"
	"github.com/tomahawk-go/ldcore/ldmath"
	"github.com/tomahawk-go/ldcore/ldtable"
)

// Pair identifies the two sites to compare and whether to treat the
// comparison as phased.
type Pair struct {
	A, B   *genotype.Site
	Phased bool
	// WithMissing gates whether a missing haplotype call excludes its
	// position from every cell (true) or is treated as an implicit REF
	// call (false, tomahawk's unmasked fast path). Ignored when Phased
	// is false: the unphased strategies always exclude missing samples.
	WithMissing bool
}

// Outcome bundles a computed Result with the table and strategy that
// produced it, for callers that want to report provenance alongside the
// statistics.
type Outcome struct {
	Result   ldmath.Result
	Strategy ldtable.Strategy
	Skipped  bool
}

// Engine computes LD statistics for independent pairs of sites. An
// Engine holds no per-pair state and is safe for concurrent use; the
// only shared resource is its worker pool.
type Engine struct {
	pool *pool
}

// New creates an Engine whose batch computations are spread across
// workers worker goroutines. A non-positive value uses GOMAXPROCS.
func New(workers int) *Engine {
	return &Engine{pool: newPool(workers)}
}

// Close releases the engine's worker pool. Pending Compute/ComputeBatch
// calls still complete.
func (e *Engine) Close() {
	e.pool.Close()
}

// Compute runs a single pair through table construction and statistics.
func (e *Engine) Compute(p Pair) (Outcome, error) {
	if p.A == nil || p.B == nil {
		return Outcome{}, fmt.Errorf("ldengine: Compute: both sites must be non-nil")
	}
	if p.A.N != p.B.N {
		return Outcome{}, fmt.Errorf("ldengine: Compute: site sample counts differ: %d != %d", p.A.N, p.B.N)
	}

	if p.Phased {
		table, strat, err := ldtable.SelectPhased(p.A, p.B, p.WithMissing)
		if err != nil {
			return Outcome{}, fmt.Errorf("ldengine: Compute: %w", err)
		}
		result, ok := ldmath.Phased(table)
		return Outcome{Result: result, Strategy: strat, Skipped: !ok}, nil
	}

	table, strat, err := ldtable.SelectUnphased(p.A, p.B)
	if err != nil {
		return Outcome{}, fmt.Errorf("ldengine: Compute: %w", err)
	}
	result, ok := ldmath.Unphased(table)
	return Outcome{Result: result, Strategy: strat, Skipped: !ok}, nil
}

// ComputeBatch runs every pair in pairs, returning results in the same
// order. Pairs are distributed across the engine's worker pool; a
// per-pair error does not stop the batch, it is recorded at that index.
// The pool's own aggregate error is discarded here since every pair's
// error is already available individually in errs.
func (e *Engine) ComputeBatch(pairs []Pair) ([]Outcome, []error) {
	outcomes := make([]Outcome, len(pairs))
	errs := make([]error, len(pairs))

	_ = e.pool.forEachAtomic(len(pairs), func(i int) error {
		outcomes[i], errs[i] = e.Compute(pairs[i])
		return errs[i]
	})

	return outcomes, errs
}
