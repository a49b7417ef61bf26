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

// This file provides the base (pure Go) implementations of the vector
// operations. The per-lane loops are simple enough for the compiler to keep
// in registers; the dispatch level decides whether callers use them at all.

// Load creates a vector by loading up to lanes values from a slice.
func Load(src []float64, lanes int) Vec {
	n := lanes
	if len(src) < n {
		n = len(src)
	}
	data := make([]float64, n)
	copy(data, src[:n])
	return Vec{data: data}
}

// Store writes a vector's data to a slice.
func Store(v Vec, dst []float64) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set(value float64, lanes int) Vec {
	data := make([]float64, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero(lanes int) Vec {
	return Vec{data: make([]float64, lanes)}
}

// Add performs element-wise addition.
func Add(a, b Vec) Vec {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec{data: result}
}

// Mul performs element-wise multiplication.
func Mul(a, b Vec) Vec {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum(v Vec) float64 {
	var sum float64
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}
