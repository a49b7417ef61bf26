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

import (
	"fmt"

	"github.com/ajroetker/go-matmult/vec"
)

// MultiplyStrategy computes the product of two shape-compatible, non-empty
// matrices. Implementations may assume lhs.Width() == rhs.Height(); Mul and
// NaiveMul enforce that before delegating.
type MultiplyStrategy interface {
	Multiply(lhs, rhs Matrix) Matrix
}

// chooseStrategy probes the dispatch level and returns the lane-cascade
// strategy on hosts with 256-bit-or-wider vectors, the scalar triple loop
// otherwise. Detection itself runs once at process start (vec package
// init); this only consults the cached level.
func chooseStrategy() MultiplyStrategy {
	if vec.HasWideVectors() {
		return vectorStrategy{}
	}
	return scalarStrategy{}
}

// Mul returns the product lhs * rhs with shape (rhs.Width, lhs.Height).
//
// If either operand has zero width or zero height the result is the empty
// 0x0 matrix and no shape check is performed. Otherwise lhs.Width must
// equal rhs.Height; a mismatch panics, since it indicates a caller bug
// rather than a recoverable condition.
func Mul(lhs, rhs Matrix) Matrix {
	return mulWith(chooseStrategy(), lhs, rhs)
}

// NaiveMul returns the product computed by the scalar reference path,
// regardless of CPU capabilities. Degenerate and shape handling match Mul.
func NaiveMul(lhs, rhs Matrix) Matrix {
	return mulWith(scalarStrategy{}, lhs, rhs)
}

func mulWith(s MultiplyStrategy, lhs, rhs Matrix) Matrix {
	// Deliberate early exit: a degenerate operand always yields the empty
	// matrix, with no compatibility check.
	if lhs.width == 0 || lhs.height == 0 || rhs.width == 0 || rhs.height == 0 {
		return Matrix{data: []float64{}}
	}

	if lhs.width != rhs.height {
		panic(fmt.Sprintf("mat: dimension mismatch %dx%d * %dx%d",
			lhs.height, lhs.width, rhs.height, rhs.width))
	}

	return s.Multiply(lhs, rhs)
}

// scalarStrategy is the reference triple loop. Every output cell accumulates
// lhs.Row(r)[i] * rhs.Row(i)[c] left to right.
type scalarStrategy struct{}

func (scalarStrategy) Multiply(lhs, rhs Matrix) Matrix {
	data := make([]float64, 0, rhs.width*lhs.height)

	for r := 0; r < lhs.height; r++ {
		row := lhs.Row(r)
		for c := 0; c < rhs.width; c++ {
			var sum float64
			for i, v := range row {
				sum += v * rhs.Row(i)[c]
			}
			data = append(data, sum)
		}
	}

	return Matrix{data: data, width: rhs.width, height: lhs.height}
}

// vectorStrategy stages the right-hand matrix into contiguous columns and
// computes each output cell with the lane-cascade dot product. The staging
// gather is required because the cascade needs both operands contiguous.
type vectorStrategy struct{}

func (vectorStrategy) Multiply(lhs, rhs Matrix) Matrix {
	cols := stageColumns(rhs)

	data := make([]float64, 0, rhs.width*lhs.height)
	for r := 0; r < lhs.height; r++ {
		row := lhs.Row(r)
		for _, col := range cols {
			data = append(data, vec.DotCascade(row, col))
		}
	}

	return Matrix{data: data, width: rhs.width, height: lhs.height}
}

// stageColumns materializes each column of m as a contiguous slice,
// an explicit gather-transpose of the row-major storage.
func stageColumns(m Matrix) [][]float64 {
	cols := make([][]float64, 0, m.width)
	for c := 0; c < m.width; c++ {
		col := make([]float64, 0, m.height)
		for v := 0; v < m.height; v++ {
			col = append(col, m.Row(v)[c])
		}
		cols = append(cols, col)
	}
	return cols
}
