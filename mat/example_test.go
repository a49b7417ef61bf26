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

package mat_test

import (
	"fmt"

	"github.com/ajroetker/go-matmult/mat"
)

func ExampleMul() {
	a := mat.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3)
	b := a.Clone()

	c := mat.Mul(a, b)
	fmt.Println(c.Raw())
	// Output: [30 36 42 66 81 96 102 126 150]
}

func ExampleMatrix_Transpose() {
	// 2 rows x 3 cols
	m := mat.New([]float64{1, 2, 3, 4, 5, 6}, 3, 2)

	tr := m.Transpose()
	fmt.Println(tr.Width(), tr.Height())
	fmt.Println(tr.Raw())
	// Output:
	// 2 3
	// [1 4 2 5 3 6]
}
