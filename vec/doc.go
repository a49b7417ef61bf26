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

// Package vec provides portable fixed-width vector operations over float64
// lanes, plus the runtime CPU dispatch that decides whether the vectorized
// kernels are worth using at all.
//
// Operations work on Vec values holding a fixed number of lanes. In base
// mode the lanes are backed by plain slices and the per-lane loops compile
// to straight-line Go; the dispatch level only records what the host CPU
// offers so that callers (see the mat package) can pick between the
// lane-cascade kernels and scalar code.
//
// The key entry points are DotCascade and MulCascade: greedy
// descending-width decompositions of an arbitrary-length element-wise
// multiply, mirroring how hardware vector registers come in power-of-two
// lane counts.
//
// Basic usage:
//
//	a := []float64{1, 2, 3, 4}
//	b := []float64{10, 20, 30, 40}
//	sum := vec.DotCascade(a, b) // 300
//
// Set MATMULT_NO_SIMD=1 to force scalar mode regardless of CPU capabilities.
package vec
