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

//go:build amd64 && goexperiment.simd

package gtsimd

import (
	"encoding/binary"
	"math/bits"
	"simd/archsimd"
)

// AVX2 doesn't have a native SIMD popcount instruction, so the chunk is
// built with real vector AND/XOR for the joint-genotype masks and then
// reduced with a store/scalar-popcount pass, mirroring
// PopCount_AVX2_I64x4 in the upstream bitops_avx2.go kernel.
func countChunkAVX2(a, ma, b, mb []byte, withMissing bool) JointCounts {
	va := loadInt64x4(a)
	vb := loadInt64x4(b)

	vrefref := va.Or(vb).Xor(allOnesI64x4) // ¬(a|b) == ¬a & ¬b
	valtalt := va.And(vb)
	vaxorb := va.Xor(vb)
	vrefalt := vaxorb.And(va)
	valtref := vaxorb.And(vb)

	if withMissing {
		vma := loadInt64x4(ma)
		vmb := loadInt64x4(mb)
		vm := vma.Or(vmb).Xor(allOnesI64x4)
		vrefref = vrefref.And(vm)
		vrefalt = vrefalt.And(vm)
		valtref = valtref.And(vm)
		valtalt = valtalt.And(vm)
	}

	return JointCounts{
		RefRef: sumPopcountI64x4(vrefref),
		RefAlt: sumPopcountI64x4(vrefalt),
		AltRef: sumPopcountI64x4(valtref),
		AltAlt: sumPopcountI64x4(valtalt),
	}
}

var allOnesI64x4 = archsimd.LoadInt64x4Slice([]int64{-1, -1, -1, -1})

func loadInt64x4(b []byte) archsimd.Int64x4 {
	var words [4]int64
	for i := range words {
		words[i] = int64(binary.LittleEndian.Uint64(b[i*8 : i*8+8]))
	}
	return archsimd.LoadInt64x4Slice(words[:])
}

func sumPopcountI64x4(v archsimd.Int64x4) uint64 {
	var words [4]int64
	v.StoreSlice(words[:])
	var total uint64
	for _, w := range words {
		total += uint64(bits.OnesCount64(uint64(w)))
	}
	return total
}

func init() {
	registerChunkKernel(DispatchAVX2, countChunkAVX2)
}
