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

// AVX-512 VPOPCNTDQ provides a native popcount for 64-bit lanes, but (as
// in the upstream PopCount_AVX512_I64x8 kernel) we use the portable
// store/scalar/reduce pattern so this kernel runs on any AVX-512 variant,
// not just CPUs with VPOPCNTDQ.
func countChunkAVX512(a, ma, b, mb []byte, withMissing bool) JointCounts {
	va := loadInt64x8(a)
	vb := loadInt64x8(b)

	vrefref := va.Or(vb).Xor(allOnesI64x8)
	valtalt := va.And(vb)
	vaxorb := va.Xor(vb)
	vrefalt := vaxorb.And(va)
	valtref := vaxorb.And(vb)

	if withMissing {
		vma := loadInt64x8(ma)
		vmb := loadInt64x8(mb)
		vm := vma.Or(vmb).Xor(allOnesI64x8)
		vrefref = vrefref.And(vm)
		vrefalt = vrefalt.And(vm)
		valtref = valtref.And(vm)
		valtalt = valtalt.And(vm)
	}

	return JointCounts{
		RefRef: sumPopcountI64x8(vrefref),
		RefAlt: sumPopcountI64x8(vrefalt),
		AltRef: sumPopcountI64x8(valtref),
		AltAlt: sumPopcountI64x8(valtalt),
	}
}

var allOnesI64x8 = archsimd.LoadInt64x8Slice([]int64{-1, -1, -1, -1, -1, -1, -1, -1})

func loadInt64x8(b []byte) archsimd.Int64x8 {
	var words [8]int64
	for i := range words {
		words[i] = int64(binary.LittleEndian.Uint64(b[i*8 : i*8+8]))
	}
	return archsimd.LoadInt64x8Slice(words[:])
}

func sumPopcountI64x8(v archsimd.Int64x8) uint64 {
	var words [8]int64
	v.StoreSlice(words[:])
	var total uint64
	for _, w := range words {
		total += uint64(bits.OnesCount64(uint64(w)))
	}
	return total
}

func init() {
	registerChunkKernel(DispatchAVX512, countChunkAVX512)
}
