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

// Package gtsimd implements the width-dispatched joint-genotype popcount
// kernel (C2 in the LD core design): given two packed haplotype vectors
// it counts, per byte range, how many haplotype pairs are REF/REF,
// REF/ALT, ALT/REF, and ALT/ALT, optionally gated by a combined
// non-missing mask. It follows the go-highway dispatch model: detect the
// widest SIMD tier at process start and route to the matching kernel,
// falling back to a portable scalar 8-byte-word unroll everywhere else.
package gtsimd
