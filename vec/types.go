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

// Vec is a fixed-width vector of float64 lanes.
//
// In base mode it wraps a slice. Vec instances should not be created
// directly; use Load, Set, or Zero instead.
type Vec struct {
	// data holds the vector elements in base mode.
	data []float64
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec) Data() []float64 {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the vec.Store function.
func (v Vec) Store(dst []float64) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}
