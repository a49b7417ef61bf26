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

package mat

import "fmt"

// Matrix is a dense float64 matrix stored in row-major order: element (r, c)
// lives at data[r*width+c]. The shape is fixed at construction.
//
// A Matrix produced by Mul, Transpose, or Clone never aliases its inputs.
type Matrix struct {
	data   []float64
	width  int
	height int
}

// New creates a matrix from a flat row-major slice.
//
// PRECONDITION: len(data) == width*height. Violating it panics; a wrong
// element count indicates a bug at the call site, not a runtime condition.
func New(data []float64, width, height int) Matrix {
	if len(data) != width*height {
		panic(fmt.Sprintf("mat: %d values for %dx%d matrix, want %d",
			len(data), width, height, width*height))
	}
	return Matrix{data: data, width: width, height: height}
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return m.height
}

// Row returns row n as a slice view into the matrix (no copy).
// Out-of-range n panics via the underlying slice bounds.
func (m Matrix) Row(n int) []float64 {
	return m.data[n*m.width : (n+1)*m.width]
}

// Clone returns a deep copy. Use it when an operand must survive a Mul,
// since results never alias but callers may otherwise share the flat slice.
func (m Matrix) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Matrix{data: data, width: m.width, height: m.height}
}

// Raw returns the flat row-major value slice. The matrix should not be used
// afterwards; the caller takes over the storage.
func (m Matrix) Raw() []float64 {
	return m.data
}

// Transpose returns a new matrix with the dimensions swapped and element
// (r, c) moved to (c, r). Flattened output index n pulls from input index
// n/outWidth + (n%outWidth)*inWidth, where the output width equals the
// input height; the remapping holds for non-square shapes.
func (m Matrix) Transpose() Matrix {
	data := make([]float64, len(m.data))
	outWidth := m.height
	for n := range data {
		data[n] = m.data[n/outWidth+(n%outWidth)*m.width]
	}
	return Matrix{data: data, width: m.height, height: m.width}
}
