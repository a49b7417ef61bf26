// Copyright 2026 go-matmult Authors
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

// Package mat provides dense row-major float64 matrices and their product.
//
// Mul picks between two strategies at runtime: on hosts with a
// 256-bit-or-wider vector extension (AVX2 class) the right-hand operand is
// staged into contiguous columns and every output cell is computed with the
// vec package's lane-cascade dot product; elsewhere Mul delegates to the
// scalar triple loop, also exposed directly as NaiveMul.
//
// Shape mismatches and construction invariant violations are programming
// errors and panic; they are never returned as error values.
//
// Example usage:
//
//	a := mat.New([]float64{1, 2, 3, 4, 5, 6}, 3, 2) // 2 rows x 3 cols
//	b := mat.New([]float64{7, 8, 9, 10, 11, 12}, 2, 3)
//	c := mat.Mul(a, b) // 2 rows x 2 cols
package mat
