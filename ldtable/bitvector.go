package ldtable

import (
	"github.com/tomahawk-go/ldcore/genotype"
	"github.com/tomahawk-go/ldcore/gtsimd"
)

// BitVectorPhased tallies the 2x2 haplotype table by popcounting the two
// sites' flat bit-vectors directly. Leading and trailing byte ranges that
// are zero in both sites (homozygous REF, non-missing) are skipped and
// their deterministic REF/REF contribution added back, since a kernel
// call gains nothing scanning bytes it already knows the answer to.
// Padding bits beyond sample N are not counted in any cell.
func BitVectorPhased(a, b *genotype.Site, withMissing bool) Phased {
	start, end := overlapSkipRange(a, b)

	counts := gtsimd.Count(a.Data, a.Mask, b.Data, b.Mask, start, end, withMissing)
	skipped := uint64(start+(len(a.Data)-end)) * 8
	// The zero padding bits past sample N in the last byte were tallied as
	// REF/REF by either the skip or the kernel; take them back out.
	padding := uint64(len(a.Data)*8 - 2*a.N)

	// gtsimd's RefAlt mask is "ALT in a only" and its AltRef mask "ALT in
	// b only"; Phased names cells site A first, so they map crosswise.
	return Phased{
		RefRef: counts.RefRef + skipped - padding,
		RefAlt: counts.AltRef,
		AltRef: counts.RefAlt,
		AltAlt: counts.AltAlt,
	}
}

// overlapSkipRange returns the [start, end) byte range that is NOT
// provably all-zero in both sites, i.e. the region a kernel actually
// needs to inspect.
func overlapSkipRange(a, b *genotype.Site) (start, end int) {
	start = a.FrontZeroBytes
	if b.FrontZeroBytes < start {
		start = b.FrontZeroBytes
	}
	n := len(a.Data)
	tail := a.TailZeroBytes
	if b.TailZeroBytes < tail {
		tail = b.TailZeroBytes
	}
	end = n - tail
	if end < start {
		end = start
	}
	return start, end
}

// BitVectorUnphased tallies the 3x3 genotype-class table by decoding
// each sample's haplotype pair at both sites directly from Data/Mask. A
// sample missing at either site is excluded from the table entirely.
func BitVectorUnphased(a, b *genotype.Site) Unphased {
	var u Unphased
	n := a.N
	for i := 0; i < n; i++ {
		aa, ab := a.At(i)
		ba, bb := b.At(i)
		if aa == genotype.Missing || ab == genotype.Missing || ba == genotype.Missing || bb == genotype.Missing {
			continue
		}
		ca := classOf(alleleBit(aa), alleleBit(ab))
		cb := classOf(alleleBit(ba), alleleBit(bb))
		u.Cell[ca][cb]++
	}
	return u
}

func alleleBit(a genotype.Allele) byte {
	if a == genotype.Alt {
		return 1
	}
	return 0
}
