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

// Package main times the dispatched multiply against the scalar reference
// over square matrices of increasing size and prints one comparison row per
// size. It accepts no flags.
package main

import (
	"fmt"
	"time"

	"github.com/ajroetker/go-matmult/mat"
)

const maxSize = 200

func filled(value float64, n int) mat.Matrix {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = value
	}
	return mat.New(data, n, n)
}

func main() {
	simdTimes := make([]time.Duration, 0, maxSize)
	naiveTimes := make([]time.Duration, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		lhs := filled(5.0, i)
		rhs := filled(15.0, i)

		start := time.Now()
		_ = mat.Mul(lhs.Clone(), rhs.Clone())
		simdTimes = append(simdTimes, time.Since(start))

		start = time.Now()
		_ = mat.NaiveMul(lhs, rhs)
		naiveTimes = append(naiveTimes, time.Since(start))
	}

	for i := 0; i < maxSize; i++ {
		fmt.Printf("%dx%d \t simd %v naive %v\n", i, i, simdTimes[i], naiveTimes[i])
	}
}
