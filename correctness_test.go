// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx_test

import (
	"math/rand"
	"testing"

	"code.hybscloud.com/gridx"
)

// fillRandom populates g with deterministic pseudo-random values.
func fillRandom(g *gridx.Grid, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	data := g.Data()
	for i := range data {
		data[i] = rng.Float32()*2000 - 1000
	}
}

// =============================================================================
// Kernel Contract (per strategy)
// =============================================================================

// TestTransformContract checks dst[y][x] == src[y][x] + x + y over
// arbitrary input for every strategy.
func TestTransformContract(t *testing.T) {
	for _, s := range gridx.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			src := gridx.NewGrid(7, 13)
			dst := gridx.NewGrid(7, 13)
			fillRandom(src, 1)

			gridx.ForStrategy(s).Transform(dst, src)

			for y := 0; y < src.Rows(); y++ {
				for x := 0; x < src.Cols(); x++ {
					want := src.At(y, x) + float32(x+y)
					if got := dst.At(y, x); got != want {
						t.Fatalf("dst(%d,%d): got %g, want %g", y, x, got, want)
					}
				}
			}
		})
	}
}

// TestTransformLeavesSourceUntouched verifies the kernel's only side
// effect is writing dst.
func TestTransformLeavesSourceUntouched(t *testing.T) {
	for _, s := range gridx.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			src := gridx.NewGrid(5, 9)
			dst := gridx.NewGrid(5, 9)
			fillRandom(src, 2)

			before := make([]float32, len(src.Data()))
			copy(before, src.Data())

			gridx.ForStrategy(s).Transform(dst, src)

			for i, v := range src.Data() {
				if v != before[i] {
					t.Fatalf("src mutated at flat index %d: got %g, want %g", i, v, before[i])
				}
			}
		})
	}
}

// TestTransformOverwritesEveryCell runs the kernel into a dst full of
// garbage; since every cell is written, none of it may survive.
func TestTransformOverwritesEveryCell(t *testing.T) {
	for _, s := range gridx.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			src := gridx.NewGrid(6, 8)
			dst := gridx.NewGrid(6, 8)
			src.FillDescending()
			fillRandom(dst, 3)

			gridx.ForStrategy(s).Transform(dst, src)

			if m, ok := gridx.Verify(dst, src); !ok {
				t.Fatalf("stale cell at (%d,%d): got %g, want %g", m.Y, m.X, m.Got, m.Want)
			}
		})
	}
}

// =============================================================================
// Boundary and Worked Example
// =============================================================================

func TestTransform1x1(t *testing.T) {
	for _, s := range gridx.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			src := gridx.NewGrid(1, 1)
			dst := gridx.NewGrid(1, 1)
			src.Set(0, 0, 3.5)

			gridx.ForStrategy(s).Transform(dst, src)

			// x+y is 0 at the only cell
			if got := dst.At(0, 0); got != 3.5 {
				t.Fatalf("dst(0,0): got %g, want 3.5", got)
			}
		})
	}
}

// TestTransformWorkedExample is the study's regression check: the
// descending input pattern always yields a constant output grid.
func TestTransformWorkedExample(t *testing.T) {
	src := gridx.NewGrid(2, 3)
	dst := gridx.NewGrid(2, 3)
	src.FillDescending()

	for _, s := range gridx.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			gridx.ForStrategy(s).Transform(dst, src)

			// input rows [5 4 3] and [4 3 2] plus index sums: all cells 5
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					if got := dst.At(y, x); got != 5 {
						t.Fatalf("dst(%d,%d): got %g, want 5", y, x, got)
					}
				}
			}
		})
	}
}
