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

//go:build arm64

package gtsimd

import (
	"math/bits"
	"unsafe"
)

// NEON has no native popcount for 64-bit lanes, so (as in the upstream
// PopCount_NEON_Uint64x2 kernel) the 16-byte chunk is reinterpreted as two
// uint64 words and counted with bits.OnesCount64.
func countChunkNEON(a, ma, b, mb []byte, withMissing bool) JointCounts {
	wa := (*[2]uint64)(unsafe.Pointer(&a[0]))
	wb := (*[2]uint64)(unsafe.Pointer(&b[0]))

	var total JointCounts
	for i := 0; i < 2; i++ {
		refref := ^wa[i] & ^wb[i]
		altalt := wa[i] & wb[i]
		axorb := wa[i] ^ wb[i]
		refalt := axorb & wa[i]
		altref := axorb & wb[i]

		if withMissing {
			wma := (*[2]uint64)(unsafe.Pointer(&ma[0]))
			wmb := (*[2]uint64)(unsafe.Pointer(&mb[0]))
			m := ^(wma[i] | wmb[i])
			refref &= m
			refalt &= m
			altref &= m
			altalt &= m
		}

		total.RefRef += uint64(bits.OnesCount64(refref))
		total.RefAlt += uint64(bits.OnesCount64(refalt))
		total.AltRef += uint64(bits.OnesCount64(altref))
		total.AltAlt += uint64(bits.OnesCount64(altalt))
	}
	return total
}

func init() {
	registerChunkKernel(DispatchNEON, countChunkNEON)
}
