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

// Package ldtable builds the per-pair contingency table two genotype
// sites are compared into, choosing among three accumulation strategies
// (flat bit-vector popcount, run-length merge, sparse ALT/missing list
// intersection) by the sites' density. All three strategies must agree
// bit-for-bit on the resulting table; SelectPhased and SelectUnphased
// pick one by a cheap size
// heuristic, and the test suite cross-checks the others against it.
package ldtable
