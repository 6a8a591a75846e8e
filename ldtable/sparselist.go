package ldtable

import "github.com/tomahawk-go/ldcore/genotype"

// SparseListPhased derives the 2x2 haplotype table from the two sites'
// sparse ALT/missing position lists via sorted-list set operations,
// without ever materializing the full bit-vector. It is cheapest when
// both sites are rare variants (short lists relative to N).
func SparseListPhased(a, b *genotype.Site, withMissing bool) Phased {
	var p Phased
	addChannel(&p, a.AltA, b.AltA, a.MissingA, b.MissingA, a.N, withMissing)
	addChannel(&p, a.AltB, b.AltB, a.MissingB, b.MissingB, a.N, withMissing)
	return p
}

func addChannel(p *Phased, altX, altY, missX, missY []int, n int, withMissing bool) {
	altAlt := intersectCount(altX, altY)
	altRef := len(altX) - altAlt
	refAlt := len(altY) - altAlt

	if withMissing {
		altRef -= intersectCount(altX, missY)
		refAlt -= intersectCount(altY, missX)
		excluded := unionCount(missX, missY)
		refRef := n - excluded - altAlt - altRef - refAlt
		p.RefRef += uint64(refRef)
		p.RefAlt += uint64(refAlt)
		p.AltRef += uint64(altRef)
		p.AltAlt += uint64(altAlt)
		return
	}

	refRef := n - altAlt - altRef - refAlt
	p.RefRef += uint64(refRef)
	p.RefAlt += uint64(refAlt)
	p.AltRef += uint64(altRef)
	p.AltAlt += uint64(altAlt)
}

// intersectCount returns the number of elements common to two ascending,
// duplicate-free int slices via a linear merge.
func intersectCount(a, b []int) int {
	var i, j, n int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// unionCount returns the number of distinct elements across two
// ascending, duplicate-free int slices via a linear merge.
func unionCount(a, b []int) int {
	var i, j, n int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
		n++
	}
	n += (len(a) - i) + (len(b) - j)
	return n
}
