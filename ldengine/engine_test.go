package ldengine

import (
	"testing"

	"github.com/tomahawk-go/ldcore/genotype"
)

func encodeSite(t *testing.T, pairs [][2]genotype.Allele) *genotype.Site {
	t.Helper()
	s, err := genotype.Encode(len(pairs), pairs)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return s
}

func TestComputeSinglePair(t *testing.T) {
	R, A := genotype.Ref, genotype.Alt
	pairs := make([][2]genotype.Allele, 40)
	for i := range pairs {
		if i%2 == 0 {
			pairs[i] = [2]genotype.Allele{R, R}
		} else {
			pairs[i] = [2]genotype.Allele{A, A}
		}
	}
	siteA := encodeSite(t, pairs)
	siteB := encodeSite(t, pairs)

	e := New(2)
	defer e.Close()

	out, err := e.Compute(Pair{A: siteA, B: siteB, Phased: true})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if out.Skipped {
		t.Fatalf("Compute() Skipped = true, want false")
	}
	if out.Result.R2 < 0.99 {
		t.Errorf("R2 = %v, want close to 1", out.Result.R2)
	}
}

func TestComputeSurfacesRunLengthDesync(t *testing.T) {
	R, A := genotype.Ref, genotype.Alt
	// Two runs, but enough ALT entries to push dispatch past the
	// sparse-list threshold and into the run-length strategy.
	pairs := make([][2]genotype.Allele, 200)
	for i := range pairs {
		if i < 100 {
			pairs[i] = [2]genotype.Allele{A, A}
		} else {
			pairs[i] = [2]genotype.Allele{R, R}
		}
	}
	siteA := encodeSite(t, pairs)
	siteB := encodeSite(t, pairs)
	siteB.Runs = []genotype.Run{{HapA: A, HapB: A, Length: 100}}

	e := New(1)
	defer e.Close()

	if _, err := e.Compute(Pair{A: siteA, B: siteB, Phased: true}); err == nil {
		t.Fatalf("Compute() error = nil, want run-length desync error")
	}
}

func TestComputeMismatchedSampleCounts(t *testing.T) {
	R := genotype.Ref
	a := encodeSite(t, [][2]genotype.Allele{{R, R}, {R, R}})
	b := encodeSite(t, [][2]genotype.Allele{{R, R}})

	e := New(1)
	defer e.Close()

	if _, err := e.Compute(Pair{A: a, B: b, Phased: true}); err == nil {
		t.Fatalf("Compute() error = nil, want mismatch error")
	}
}

func TestComputeBatchPreservesOrderAndParallelizes(t *testing.T) {
	R, A := genotype.Ref, genotype.Alt
	refSite := encodeSite(t, [][2]genotype.Allele{{R, R}, {R, R}, {R, R}, {R, R}})
	polySite := encodeSite(t, [][2]genotype.Allele{{R, R}, {R, R}, {A, A}, {A, A}})

	pairs := make([]Pair, 50)
	for i := range pairs {
		if i%2 == 0 {
			pairs[i] = Pair{A: refSite, B: refSite, Phased: true}
		} else {
			pairs[i] = Pair{A: polySite, B: polySite, Phased: true}
		}
	}

	e := New(4)
	defer e.Close()

	outcomes, errs := e.ComputeBatch(pairs)
	for i, err := range errs {
		if err != nil {
			t.Fatalf("ComputeBatch()[%d] error = %v", i, err)
		}
	}
	for i, o := range outcomes {
		if i%2 == 0 && !o.Skipped {
			t.Errorf("pair %d: expected skip (monomorphic), got %+v", i, o)
		}
	}
}

func TestSummarizeCountsSkippedSeparately(t *testing.T) {
	R, A := genotype.Ref, genotype.Alt
	refSite := encodeSite(t, [][2]genotype.Allele{{R, R}, {R, R}, {R, R}, {R, R}})
	polySite := encodeSite(t, [][2]genotype.Allele{{R, R}, {R, R}, {A, A}, {A, A}})

	e := New(2)
	defer e.Close()

	outcomes, _ := e.ComputeBatch([]Pair{
		{A: refSite, B: refSite, Phased: true},   // monomorphic, skipped
		{A: polySite, B: polySite, Phased: true}, // informative
	})

	summary := Summarize(outcomes)
	if summary.Count != 1 {
		t.Errorf("Summarize() Count = %d, want 1", summary.Count)
	}
	if summary.StrategyUse == nil || len(summary.StrategyUse) == 0 {
		t.Errorf("Summarize() StrategyUse is empty")
	}
}
