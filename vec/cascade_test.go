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

import "testing"

// dotReference is the plain left-to-right accumulation, used as the
// correctness reference for the cascade.
func dotReference(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func TestDotCascadeSixElements(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4, 5}
	b := []float64{10, 20, 30, 40, 50, 60}

	got := DotCascade(a, b)
	if got != 700.0 {
		t.Errorf("DotCascade = %f, want 700", got)
	}
}

func TestDotCascadeHundredElements(t *testing.T) {
	// a = 9900..9999, b = 99, 199, ..., 9999
	a := make([]float64, 100)
	b := make([]float64, 100)
	for i := range a {
		a[i] = float64(9900 + i)
		b[i] = float64(100*i + 99)
	}

	got := DotCascade(a, b)
	if got != 5031835050.0 {
		t.Errorf("DotCascade = %f, want 5031835050", got)
	}
}

func TestDotCascadeAllResidues(t *testing.T) {
	// Lengths chosen to hit every cascade shape: below the smallest lane,
	// exact lane multiples, one past a lane, and multi-pass lengths where
	// the widest lane is reused.
	lengths := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 31, 32, 63, 64, 65, 100, 127, 128, 193, 300}

	for _, n := range lengths {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = float64(i + 1)
			b[i] = float64(2*i - 3)
		}

		want := dotReference(a, b)
		got := DotCascade(a, b)
		if got != want {
			t.Errorf("len %d: DotCascade = %f, want %f", n, got, want)
		}
	}
}

func TestDotCascadeLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DotCascade with mismatched lengths did not panic")
		}
	}()
	DotCascade(make([]float64, 3), make([]float64, 4))
}

func TestMulCascadeAllResidues(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 7, 63, 64, 65, 100, 127, 130}

	for _, n := range lengths {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = float64(i + 1)
			b[i] = float64(n - i)
		}

		got := MulCascade(a, b)
		if len(got) != n {
			t.Fatalf("len %d: MulCascade returned %d elements", n, len(got))
		}
		for i := range got {
			want := a[i] * b[i]
			if got[i] != want {
				t.Errorf("len %d: product[%d] = %f, want %f", n, i, got[i], want)
			}
		}
	}
}

func TestMulCascadeLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MulCascade with mismatched lengths did not panic")
		}
	}()
	MulCascade(make([]float64, 65), make([]float64, 64))
}

func TestProcessCascadeCoversInput(t *testing.T) {
	// The cascade must visit every index exactly once, lane chunks first
	// within a pass, widest first.
	const n = 131 // 64 + 64 + 2 + 1
	seen := make([]int, n)

	processCascade(n,
		func(offset, width int) {
			for i := offset; i < offset+width; i++ {
				seen[i]++
			}
		},
		func(offset int) {
			seen[offset]++
		},
	)

	for i, count := range seen {
		if count != 1 {
			t.Errorf("index %d visited %d times, want 1", i, count)
		}
	}
}

func BenchmarkDotCascade(b *testing.B) {
	x := make([]float64, 1024)
	y := make([]float64, 1024)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i) * 0.5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DotCascade(x, y)
	}
}

func BenchmarkDotReference(b *testing.B) {
	x := make([]float64, 1024)
	y := make([]float64, 1024)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i) * 0.5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dotReference(x, y)
	}
}
