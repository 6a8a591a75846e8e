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

// Package ldmath turns a 2x2 haplotype table or 3x3 genotype-class table
// into the classic linkage-disequilibrium statistics: D, D', r, r²,
// a chi-square goodness-of-fit score, and Fisher's exact test p-value.
// Unphased pairs additionally resolve haplotype-frequency ambiguity via
// a closed-form cubic maximum-likelihood solve before falling into the
// same phased math.
package ldmath
