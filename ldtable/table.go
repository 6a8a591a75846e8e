package ldtable

// Phased is the 2x2 haplotype contingency table produced when comparing
// two sites haplotype-by-haplotype (phase known or assumed).
type Phased struct {
	RefRef, RefAlt, AltRef, AltAlt uint64
}

// N is the total number of haplotype pairs tallied.
func (p Phased) N() uint64 { return p.RefRef + p.RefAlt + p.AltRef + p.AltAlt }

// Add accumulates another table's cells into p.
func (p *Phased) Add(o Phased) {
	p.RefRef += o.RefRef
	p.RefAlt += o.RefAlt
	p.AltRef += o.AltRef
	p.AltAlt += o.AltAlt
}

// GenoClass is a sample's genotype class at one site, ignoring which
// haplotype carries which allele.
type GenoClass uint8

const (
	HomRef GenoClass = iota
	Het
	HomAlt
	nClasses
)

func classOf(a, b byte) GenoClass {
	switch {
	case a == 0 && b == 0:
		return HomRef
	case a == 1 && b == 1:
		return HomAlt
	default:
		return Het
	}
}

// Unphased is the 3x3 genotype-class contingency table used when phase
// is unknown. Cell[i][j] counts samples whose site-A class is i and
// site-B class is j (class order HomRef, Het, HomAlt).
type Unphased struct {
	Cell [nClasses][nClasses]uint64
}

// N is the total number of samples tallied (non-missing at both sites).
func (u Unphased) N() uint64 {
	var n uint64
	for i := range u.Cell {
		for j := range u.Cell[i] {
			n += u.Cell[i][j]
		}
	}
	return n
}

// H is the double-heterozygote count: the one cell whose contribution to
// haplotype frequencies is phase-ambiguous.
func (u Unphased) H() uint64 { return u.Cell[Het][Het] }

// Add accumulates another table's cells into u.
func (u *Unphased) Add(o Unphased) {
	for i := range u.Cell {
		for j := range u.Cell[i] {
			u.Cell[i][j] += o.Cell[i][j]
		}
	}
}

// HaplotypeCounts derives the unambiguous 2x2 haplotype counts implied by
// the 8 phase-unambiguous cells, per the standard two-locus decomposition:
// every homozygous call contributes two copies of its haplotype, every
// single heterozygote contributes one copy of each locus's known allele
// paired with the other locus's homozygous allele. The double-het cell H
// is excluded; callers fold it in via the cubic-root MLE when H > 0.
func (u Unphased) HaplotypeCounts() Phased {
	return Phased{
		RefRef: 2*u.Cell[HomRef][HomRef] + u.Cell[HomRef][Het] + u.Cell[Het][HomRef],
		RefAlt: u.Cell[HomRef][Het] + 2*u.Cell[HomRef][HomAlt] + u.Cell[Het][HomAlt],
		AltRef: u.Cell[Het][HomRef] + 2*u.Cell[HomAlt][HomRef] + u.Cell[HomAlt][Het],
		AltAlt: u.Cell[Het][HomAlt] + u.Cell[HomAlt][Het] + 2*u.Cell[HomAlt][HomAlt],
	}
}
