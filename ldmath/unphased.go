package ldmath

import (
	"math"

	"github.com/tomahawk-go/ldcore/ldtable"
)

// allowedRoundingError tolerates float accumulation error when checking
// a candidate haplotype frequency against its biologically feasible
// range.
const allowedRoundingError = 0.001

// Unphased computes LD statistics from a 3x3 genotype-class table. When
// the table has no double heterozygotes, phase is fully determined and
// this collapses to the same math as Phased. Otherwise it resolves the
// ambiguous haplotype frequency via the maximum-likelihood cubic root
// whose implied 3x3 table best fits the observed one (least chi-square
// among the biologically feasible roots), computes D, D', r and r² from
// the resolved haplotype frequencies with the same formulas as Phased, and
// takes the Fisher p-value from the 2x2 counts those frequencies imply.
func Unphased(t ldtable.Unphased) (Result, bool) {
	h := t.H()
	if h == 0 {
		return Phased(t.HaplotypeCounts())
	}

	n := t.N()
	if n == 0 {
		return Result{}, false
	}
	total := float64(n)

	// p = REF allele frequency at site A, q = REF allele frequency at
	// site B (row/column marginals of the 3x3 table).
	p := (float64(2*(t.Cell[ldtable.HomRef][ldtable.HomRef]+t.Cell[ldtable.HomRef][ldtable.Het]+t.Cell[ldtable.HomRef][ldtable.HomAlt])) +
		float64(t.Cell[ldtable.Het][ldtable.HomRef]+t.Cell[ldtable.Het][ldtable.Het]+t.Cell[ldtable.Het][ldtable.HomAlt])) /
		(2.0 * total)
	q := (float64(2*(t.Cell[ldtable.HomRef][ldtable.HomRef]+t.Cell[ldtable.Het][ldtable.HomRef]+t.Cell[ldtable.HomAlt][ldtable.HomRef])) +
		float64(t.Cell[ldtable.HomRef][ldtable.Het]+t.Cell[ldtable.Het][ldtable.Het]+t.Cell[ldtable.HomAlt][ldtable.Het])) /
		(2.0 * total)

	// n11 is twice the unambiguous double-homozygous-REF count plus the
	// single-het contributions that still unambiguously carry a REF/REF
	// haplotype: the fixed floor of the cubic's target haplotype-11
	// frequency, below the double-het cell's phase ambiguity.
	n11 := float64(2*t.Cell[ldtable.HomRef][ldtable.HomRef] + t.Cell[ldtable.HomRef][ldtable.Het] + t.Cell[ldtable.Het][ldtable.HomRef])

	a, b, c, d, minHap, maxHap := cubicCoefficients(p, q, n11, float64(h), total)

	roots := solveCubic(a, b, c, d)

	best := math.MaxFloat64
	bestRoot := 0.0
	found := 0
	for _, root := range roots {
		if root < minHap-allowedRoundingError || root > maxHap+allowedRoundingError {
			continue
		}
		found++
		cs := chiSquareUnphasedTable(root, p, q, total, t)
		if cs < best {
			best = cs
			bestRoot = root
		}
	}
	if found == 0 {
		return Result{}, false
	}

	p11 := bestRoot
	p12 := p - p11
	p21 := q - p11
	p22 := math.Max(0, 1-(p11+p12+p21))

	r := Result{UsedUnphased: true, BiologicallyPossibleRoots: found}
	r.D = p11*p22 - p12*p21
	r.R2 = r.D * r.D / (p * (1 - p) * q * (1 - q))
	r.R = math.Sqrt(r.R2)
	if r.D >= 0 {
		r.Dmax = math.Min(p*(1-q), q*(1-p))
	} else {
		r.Dmax = -math.Min(p*q, (1-p)*(1-q))
	}
	r.Dprime = r.D / r.Dmax
	r.ChiSq = best

	counts := ldtable.Phased{
		RefRef: uint64(math.Round(p11 * 2 * total)),
		RefAlt: uint64(math.Round(p12 * 2 * total)),
		AltRef: uint64(math.Round(p21 * 2 * total)),
		AltAlt: uint64(math.Round(p22 * 2 * total)),
	}
	r.FisherP = FisherExact(int64(counts.RefRef), int64(counts.RefAlt), int64(counts.AltRef), int64(counts.AltAlt))

	return r, true
}

// cubicCoefficients returns the depressed-cubic coefficients a*x^3 +
// b*x^2 + c*x + d = 0 for the maximum-likelihood haplotype-11 frequency,
// plus the [minHap, maxHap] range a biologically valid solution must
// fall within.
func cubicCoefficients(p, q, n11, numHets, total float64) (a, b, c, d, minHap, maxHap float64) {
	g := 1.0 - 2.0*p - 2.0*q
	d = -n11 * p * q
	c = -n11*g - numHets*(1.0-p-q) + 2.0*total*p*q
	b = 2.0*total*g - 2.0*n11 - numHets
	a = 4.0 * total

	minHap = n11 / (2.0 * total)
	maxHap = (n11 + numHets) / (2.0 * total)
	return a, b, c, d, minHap, maxHap
}

// solveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0,
// following the classical depressed-cubic trigonometric/Cardano split on
// the discriminant's sign.
func solveCubic(a, b, c, d float64) []float64 {
	xN := -b / (3.0 * a)
	d2 := (b*b - 3.0*a*c) / (9.0 * a * a)
	yN := a*xN*xN*xN + b*xN*xN + c*xN + d
	yN2 := yN * yN
	h2 := 4.0 * a * a * d2 * d2 * d2

	diff := yN2 - h2
	switch {
	case diff < 0: // three distinct real roots
		theta := math.Acos(-yN/math.Sqrt(h2)) / 3.0
		constant := 2.0 * math.Sqrt(d2)
		alpha := xN + constant*math.Cos(theta)
		beta := xN + constant*math.Cos(2.0*math.Pi/3.0+theta)
		gamma := xN + constant*math.Cos(4.0*math.Pi/3.0+theta)
		return []float64{alpha, beta, gamma}

	case diff > 0: // one real root
		constant := math.Sqrt(diff)
		left := signedCubeRoot(1.0 / (2.0 * a) * (-yN + constant))
		right := signedCubeRoot(1.0 / (2.0 * a) * (-yN - constant))
		return []float64{xN + left + right}

	default: // repeated root
		delta := math.Cbrt(yN / (2.0 * a))
		alpha := xN + delta
		gamma := xN - 2.0*delta
		if math.IsNaN(alpha) || math.IsNaN(gamma) {
			return nil
		}
		return []float64{alpha, gamma}
	}
}

func signedCubeRoot(x float64) float64 {
	if x < 0 {
		return -math.Pow(-x, 1.0/3.0)
	}
	return math.Pow(x, 1.0/3.0)
}

// chiSquareUnphasedTable scores a candidate haplotype-11 frequency by
// the chi-square goodness-of-fit between the genotype counts its implied
// haplotype frequencies predict and the observed 3x3 table.
func chiSquareUnphasedTable(target, p, q, total float64, t ldtable.Unphased) float64 {
	f12 := p - target
	f21 := q - target
	f22 := 1 - (target + f12 + f21)

	type cell struct {
		expected float64
		observed float64
	}
	cells := []cell{
		{total * target * target, float64(t.Cell[ldtable.HomRef][ldtable.HomRef])},
		{2 * total * target * f12, float64(t.Cell[ldtable.HomRef][ldtable.Het])},
		{total * f12 * f12, float64(t.Cell[ldtable.HomRef][ldtable.HomAlt])},
		{2 * total * target * f21, float64(t.Cell[ldtable.Het][ldtable.HomRef])},
		{2*total*f12*f21 + 2*total*target*f22, float64(t.Cell[ldtable.Het][ldtable.Het])},
		{2 * total * f12 * f22, float64(t.Cell[ldtable.Het][ldtable.HomAlt])},
		{total * f21 * f21, float64(t.Cell[ldtable.HomAlt][ldtable.HomRef])},
		{2 * total * f21 * f22, float64(t.Cell[ldtable.HomAlt][ldtable.Het])},
		{total * f22 * f22, float64(t.Cell[ldtable.HomAlt][ldtable.HomAlt])},
	}

	var chiSq float64
	for _, c := range cells {
		if c.expected > 0 {
			diff := c.observed - c.expected
			chiSq += diff * diff / c.expected
		}
	}
	return chiSq
}
