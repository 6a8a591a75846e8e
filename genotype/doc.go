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

// Package genotype holds the per-site bit-packed representation consumed
// by the LD engine: a flat haplotype bitvector, its run-length encoding,
// and a sparse ALT/missing position index, all derived from the same
// source allele slice so the three downstream accumulation strategies
// can be checked against each other.
package genotype
