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

package gtsimd

import (
	"encoding/binary"
	"math/bits"
)

// chunkFn, when non-nil, is the widest available vectorized joint-popcount
// kernel for the current SIMD tier. It is set from an init() in the
// build-tagged dispatch_*.go file matching the detected tier.
var chunkFn func(a, ma, b, mb []byte, withMissing bool) JointCounts

// registerChunkKernel installs fn as chunkFn iff the detected dispatch
// level matches want. Build-tagged files call this from their own init()
// after the arch-specific dispatch_*.go init() has set currentLevel;
// Go runs a package's init funcs in filename order, and "dispatch_" sorts
// before "popcount_", so currentLevel is always final by the time this runs.
func registerChunkKernel(want DispatchLevel, fn func(a, ma, b, mb []byte, withMissing bool) JointCounts) {
	if currentLevel == want {
		chunkFn = fn
	}
}

// JointCounts holds the four joint-genotype popcounts produced by scanning
// two packed haplotype vectors A and B across the scanned byte range, one
// per mask of Count: RefRef (clear in both), RefAlt (set in A only),
// AltRef (set in B only) and AltAlt (set in both).
type JointCounts struct {
	RefRef uint64
	RefAlt uint64
	AltRef uint64
	AltAlt uint64
}

// Add accumulates other into c.
func (c *JointCounts) Add(other JointCounts) {
	c.RefRef += other.RefRef
	c.RefAlt += other.RefAlt
	c.AltRef += other.AltRef
	c.AltAlt += other.AltAlt
}

// Count scans dataA/maskA against dataB/maskB over the half-open byte range
// [start, end) and returns the joint-genotype popcounts for that range.
//
//	REFREF = ¬A ∧ ¬B         ALTALT = A ∧ B
//	REFALT = (A ⊕ B) ∧ A     ALTREF = (A ⊕ B) ∧ B
//
// When withMissing is true, every cell is additionally ANDed with the
// combined non-missing mask M = ¬(Ma ∨ Mb) before counting, so haplotypes
// missing in either site never contribute to a cell.
//
// dataA, maskA, dataB, maskB must all have equal length; callers (the
// contingency accumulator in ldtable) are responsible for slicing to a
// common, aligned byte range. The scan is dispatched to the widest SIMD
// tier detected at process start (see CurrentLevel); all tiers must agree
// bit-for-bit, which is exercised by the strategy-equivalence tests.
func Count(dataA, maskA, dataB, maskB []byte, start, end int, withMissing bool) JointCounts {
	a := dataA[start:end]
	b := dataB[start:end]
	var ma, mb []byte
	if withMissing {
		ma = maskA[start:end]
		mb = maskB[start:end]
	}

	var total JointCounts
	n := len(a)
	width := CurrentWidth()
	i := 0

	// Vectorized body: process whole SIMD-width chunks. chunkFn is set by
	// the build-tagged dispatch_*.go files to the widest available
	// archsimd/NEON kernel; when nil (SSE2 tier, or scalar) the chunk is
	// covered by the generic 8-byte-word unroll below.
	for ; i+width <= n && width >= 8; i += width {
		var chunkMA, chunkMB []byte
		if withMissing {
			chunkMA = ma[i : i+width]
			chunkMB = mb[i : i+width]
		}
		if chunkFn != nil {
			total.Add(chunkFn(a[i:i+width], chunkMA, b[i:i+width], chunkMB, withMissing))
			continue
		}
		for w := 0; w < width; w += 8 {
			var wordMA, wordMB []byte
			if withMissing {
				wordMA = chunkMA[w : w+8]
				wordMB = chunkMB[w : w+8]
			}
			total.Add(countWord8(a[i+w:i+w+8], wordMA, b[i+w:i+w+8], wordMB, withMissing))
		}
	}

	// Scalar 8-byte unrolled tail.
	for ; i+8 <= n; i += 8 {
		var chunkMA, chunkMB []byte
		if withMissing {
			chunkMA = ma[i : i+8]
			chunkMB = mb[i : i+8]
		}
		total.Add(countWord8(a[i:i+8], chunkMA, b[i:i+8], chunkMB, withMissing))
	}

	// Byte-at-a-time remainder.
	for ; i < n; i++ {
		var bma, bmb byte
		if withMissing {
			bma = ma[i]
			bmb = mb[i]
		}
		refref, refalt, altref, altalt := jointMaskByte(a[i], b[i], bma, bmb, withMissing)
		total.RefRef += uint64(bits.OnesCount8(refref))
		total.RefAlt += uint64(bits.OnesCount8(refalt))
		total.AltRef += uint64(bits.OnesCount8(altref))
		total.AltAlt += uint64(bits.OnesCount8(altalt))
	}

	return total
}

// jointMaskByte computes the four joint-genotype masks for a single byte
// of two packed haplotype vectors, optionally gated by the combined
// non-missing mask.
func jointMaskByte(a, b, ma, mb byte, withMissing bool) (refref, refalt, altref, altalt byte) {
	refref = ^a & ^b
	altalt = a & b
	axorb := a ^ b
	refalt = axorb & a
	altref = axorb & b
	if withMissing {
		m := ^(ma | mb)
		refref &= m
		refalt &= m
		altref &= m
		altalt &= m
	}
	return
}

// countWord8 is the scalar 8-byte unrolled kernel: it packs an 8-byte
// chunk into a uint64 and performs the joint-mask arithmetic once per
// word instead of once per byte, then counts bits across the whole word.
func countWord8(a, ma, b, mb []byte, withMissing bool) JointCounts {
	wa := binary.LittleEndian.Uint64(a)
	wb := binary.LittleEndian.Uint64(b)

	refref := ^wa & ^wb
	altalt := wa & wb
	waxorb := wa ^ wb
	refalt := waxorb & wa
	altref := waxorb & wb

	if withMissing {
		wma := binary.LittleEndian.Uint64(ma)
		wmb := binary.LittleEndian.Uint64(mb)
		m := ^(wma | wmb)
		refref &= m
		refalt &= m
		altref &= m
		altalt &= m
	}

	return JointCounts{
		RefRef: uint64(bits.OnesCount64(refref)),
		RefAlt: uint64(bits.OnesCount64(refalt)),
		AltRef: uint64(bits.OnesCount64(altref)),
		AltAlt: uint64(bits.OnesCount64(altalt)),
	}
}

// EdgeCorrection computes the virtual REF/REF contribution of the leading
// and trailing all-zero SIMD lanes that the caller skipped over (vec.front_zero
// and vec.tail_zero in the site record), minus the phased-unbalanced
// adjustment for a sample count that isn't a multiple of 4 haplotype-pairs
// per byte.
//
//	edge = (frontZero+tailZero) * tripCount * 2 - phasedUnbalancedAdjustment
func EdgeCorrection(frontZero, tailZero, tripCount int, phasedUnbalancedAdjustment uint64) uint64 {
	return uint64(frontZero+tailZero)*uint64(tripCount)*2 - phasedUnbalancedAdjustment
}
