package ldtable

import (
	"fmt"

	"github.com/tomahawk-go/ldcore/genotype"
)

// RunLengthMismatchError reports that two sites' run-length encodings
// desynchronized before both were fully consumed: their runs did not sum
// to the same total sample count, so no correspondence between the two
// walks can be trusted past that point.
type RunLengthMismatchError struct {
	OffsetA, OffsetB int
	TotalA, TotalB   int
}

func (e *RunLengthMismatchError) Error() string {
	return fmt.Sprintf("ldtable: run-length walk desynced: offsetA=%d totalA=%d offsetB=%d totalB=%d",
		e.OffsetA, e.TotalA, e.OffsetB, e.TotalB)
}

// RunLengthPhased walks both sites' run-length encodings in lockstep,
// processing only the overlap length of whichever run is shorter at each
// step, and tallies the 2x2 haplotype table. With withMissing true, a
// missing haplotype call excludes that haplotype position from every
// cell, matching BitVectorPhased's masked semantics; with withMissing
// false, a missing call is counted as a REF call (tomahawk's "no mask"
// fast path).
//
// Returns a *RunLengthMismatchError if the two run-length walks do not
// both finish at the same total offset — the encodings have desynced and
// the accumulated table cannot be trusted.
func RunLengthPhased(a, b *genotype.Site, withMissing bool) (Phased, error) {
	var p Phased
	ra, rb := a.Runs, b.Runs
	var ia, ib int
	var offA, offB int
	var totalA, totalB int

	for ia < len(ra) && ib < len(rb) {
		runA, runB := ra[ia], rb[ib]
		remA, remB := runA.Length-offA, runB.Length-offB
		overlap := remA
		if remB < overlap {
			overlap = remB
		}

		addPhasedPair(&p, runA.HapA, runB.HapA, overlap, withMissing)
		addPhasedPair(&p, runA.HapB, runB.HapB, overlap, withMissing)

		offA += overlap
		offB += overlap
		totalA += overlap
		totalB += overlap
		if offA == runA.Length {
			ia++
			offA = 0
		}
		if offB == runB.Length {
			ib++
			offB = 0
		}
	}
	if totalA != a.N || totalB != b.N {
		return Phased{}, &RunLengthMismatchError{OffsetA: totalA, OffsetB: totalB, TotalA: a.N, TotalB: b.N}
	}
	return p, nil
}

func addPhasedPair(p *Phased, x, y genotype.Allele, n int, withMissing bool) {
	if x == genotype.Missing || y == genotype.Missing {
		if !withMissing {
			// Fast-path convention: an unmasked comparison treats a
			// missing call as REF so every haplotype position is tallied.
			if x == genotype.Missing {
				x = genotype.Ref
			}
			if y == genotype.Missing {
				y = genotype.Ref
			}
		} else {
			return
		}
	}
	switch {
	case x == genotype.Ref && y == genotype.Ref:
		p.RefRef += uint64(n)
	case x == genotype.Ref && y == genotype.Alt:
		p.RefAlt += uint64(n)
	case x == genotype.Alt && y == genotype.Ref:
		p.AltRef += uint64(n)
	default:
		p.AltAlt += uint64(n)
	}
}

// RunLengthUnphased walks both sites' run-length encodings in lockstep
// and tallies the 3x3 genotype-class table. A run whose pair contains a
// missing haplotype call excludes its overlap from the table, matching
// BitVectorUnphased.
//
// Returns a *RunLengthMismatchError if the two run-length walks do not
// both finish at the same total offset.
func RunLengthUnphased(a, b *genotype.Site) (Unphased, error) {
	var u Unphased
	ra, rb := a.Runs, b.Runs
	var ia, ib int
	var offA, offB int
	var totalA, totalB int

	for ia < len(ra) && ib < len(rb) {
		runA, runB := ra[ia], rb[ib]
		remA, remB := runA.Length-offA, runB.Length-offB
		overlap := remA
		if remB < overlap {
			overlap = remB
		}

		if runA.HapA != genotype.Missing && runA.HapB != genotype.Missing &&
			runB.HapA != genotype.Missing && runB.HapB != genotype.Missing {
			ca := classOf(alleleBit(runA.HapA), alleleBit(runA.HapB))
			cb := classOf(alleleBit(runB.HapA), alleleBit(runB.HapB))
			u.Cell[ca][cb] += uint64(overlap)
		}

		offA += overlap
		offB += overlap
		totalA += overlap
		totalB += overlap
		if offA == runA.Length {
			ia++
			offA = 0
		}
		if offB == runB.Length {
			ib++
			offB = 0
		}
	}
	if totalA != a.N || totalB != b.N {
		return Unphased{}, &RunLengthMismatchError{OffsetA: totalA, OffsetB: totalB, TotalA: a.N, TotalB: b.N}
	}
	return u, nil
}
