package ldmath

import (
	"math"

	"github.com/tomahawk-go/ldcore/ldtable"
)

// Result holds every statistic computed for a single pair of sites.
type Result struct {
	D, Dprime, Dmax float64
	R, R2           float64
	ChiSq           float64
	FisherP         float64
	UsedUnphased    bool
	// BiologicallyPossibleRoots counts how many of the unphased cubic
	// solve's real roots fell inside the feasible haplotype-frequency
	// range. Zero for phased pairs, and for unphased pairs collapsed to
	// phased math because there were no double heterozygotes.
	BiologicallyPossibleRoots int
}

// Phased computes every statistic directly from a 2x2 haplotype table.
// It returns ok=false when the table is empty or D is exactly 0, which
// covers every table where either marginal frequency is 0 or 1.
func Phased(t ldtable.Phased) (Result, bool) {
	n := t.N()
	if n == 0 {
		return Result{}, false
	}
	total := float64(n)

	pA := float64(t.RefRef) / total // haplotype REF/REF
	qA := float64(t.RefAlt) / total // haplotype REF/ALT
	pB := float64(t.AltRef) / total // haplotype ALT/REF
	qB := float64(t.AltAlt) / total // haplotype ALT/ALT

	if pA*qB-qA*pB == 0 {
		return Result{}, false
	}

	g0 := float64(t.RefRef+t.RefAlt) / total // site A REF frequency
	g1 := float64(t.AltRef+t.AltAlt) / total // site A ALT frequency
	h0 := float64(t.RefRef+t.AltRef) / total // site B REF frequency
	h1 := float64(t.RefAlt+t.AltAlt) / total // site B ALT frequency

	var r Result
	r.D = pA*qB - qA*pB
	r.R2 = r.D * r.D / (g0 * g1 * h0 * h1)
	r.R = math.Sqrt(r.R2)

	if r.D >= 0 {
		r.Dmax = math.Min(g0*h1, h0*g1)
	} else {
		r.Dmax = -math.Min(g0*g1, h0*h1)
	}
	r.Dprime = r.D / r.Dmax

	r.FisherP = FisherExact(int64(t.RefRef), int64(t.RefAlt), int64(t.AltRef), int64(t.AltAlt))
	r.ChiSq = total * r.R2

	return r, true
}
