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

package vec

import "fmt"

// laneWidths are the register lane counts attempted by the cascade, widest
// first. Hardware vector registers come in power-of-two lane counts, and the
// largest-first greedy decomposition minimizes the number of vector
// operations issued for an arbitrary-length input.
var laneWidths = [...]int{64, 32, 16, 8, 4, 2}

// processCascade walks two equal-length sequences of length n with the
// greedy descending-width cascade. It calls:
//   - laneFn(offset, width) for each chunk consumed at a vector lane width
//   - scalarFn(offset) once for a trailing single element, if any
//
// Each pass over laneWidths consumes at most one chunk per width; the outer
// loop then re-attempts the widest lane, so a width may be used several
// times across passes for very long inputs. Every pass strictly decreases
// the remainder, and the six widths plus the singleton case cover all
// residues, so the walk terminates with the whole input consumed.
func processCascade(n int, laneFn func(offset, width int), scalarFn func(offset int)) {
	offset := 0
	remaining := n

	for remaining > 0 {
		for _, width := range laneWidths {
			if remaining >= width {
				laneFn(offset, width)
				offset += width
				remaining -= width
			}
		}

		// Vectorizing a single element is slower than a plain multiply.
		if remaining == 1 {
			scalarFn(offset)
			remaining = 0
		}
	}
}

// DotCascade computes the dot product of two equal-length float64 slices
// using the descending lane-width cascade: each chunk is loaded into
// fixed-width vectors, multiplied element-wise, and reduce-summed into the
// running accumulator.
//
// Panics if the slices differ in length; the cascade is always fed two
// views of the same logical extent and a mismatch is a caller bug.
//
// Example:
//
//	a := []float64{0, 1, 2, 3, 4, 5}
//	b := []float64{10, 20, 30, 40, 50, 60}
//	sum := vec.DotCascade(a, b) // 700
func DotCascade(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vec: length mismatch %d != %d", len(a), len(b)))
	}

	var sum float64
	processCascade(len(a),
		func(offset, width int) {
			va := Load(a[offset:], width)
			vb := Load(b[offset:], width)
			sum += ReduceSum(Mul(va, vb))
		},
		func(offset int) {
			sum += a[offset] * b[offset]
		},
	)
	return sum
}

// MulCascade computes the element-wise product of two equal-length float64
// slices using the identical cascade, storing each chunk's lane products
// instead of reducing them. Callers that need the sum should prefer
// DotCascade, which never materializes the product vector.
//
// Panics if the slices differ in length.
func MulCascade(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vec: length mismatch %d != %d", len(a), len(b)))
	}

	result := make([]float64, len(a))
	processCascade(len(a),
		func(offset, width int) {
			va := Load(a[offset:], width)
			vb := Load(b[offset:], width)
			Store(Mul(va, vb), result[offset:])
		},
		func(offset int) {
			result[offset] = a[offset] * b[offset]
		},
	)
	return result
}
