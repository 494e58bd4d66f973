// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx_test

import (
	"math"
	"testing"

	"code.hybscloud.com/gridx"
)

// =============================================================================
// Cross-Strategy Equivalence
// =============================================================================

// TestStrategiesBitIdentical runs every strategy over the same input
// and requires bit-for-bit identical output. The strategies differ
// only in access machinery, never in arithmetic.
func TestStrategiesBitIdentical(t *testing.T) {
	shapes := []struct{ rows, cols int }{
		{1, 1},
		{2, 3},
		{5, 4},
		{10, 200},
		{17, 31},
	}
	for _, shape := range shapes {
		src := gridx.NewGrid(shape.rows, shape.cols)
		fillRandom(src, int64(shape.rows*1000+shape.cols))

		ref := gridx.NewGrid(shape.rows, shape.cols)
		gridx.ForStrategy(gridx.StrategyIndexed).Transform(ref, src)

		for _, s := range gridx.Strategies()[1:] {
			dst := gridx.NewGrid(shape.rows, shape.cols)
			gridx.ForStrategy(s).Transform(dst, src)

			refData, gotData := ref.Data(), dst.Data()
			for i := range refData {
				if math.Float32bits(gotData[i]) != math.Float32bits(refData[i]) {
					t.Fatalf("%s vs indexed, shape %dx%d, flat index %d: got %g (bits %#08x), want %g (bits %#08x)",
						s, shape.rows, shape.cols, i,
						gotData[i], math.Float32bits(gotData[i]),
						refData[i], math.Float32bits(refData[i]))
				}
			}
		}
	}
}

// =============================================================================
// Idempotence
// =============================================================================

// TestTransformIdempotent checks that N calls reusing the same output
// buffer end in the same state as a single call. Every cell is
// rewritten on each call, so the buffer never needs resetting.
func TestTransformIdempotent(t *testing.T) {
	for _, s := range gridx.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			src := gridx.NewGrid(6, 11)
			fillRandom(src, 7)
			tr := gridx.ForStrategy(s)

			once := gridx.NewGrid(6, 11)
			tr.Transform(once, src)

			many := gridx.NewGrid(6, 11)
			for range 9 {
				tr.Transform(many, src)
			}

			onceData, manyData := once.Data(), many.Data()
			for i := range onceData {
				if math.Float32bits(manyData[i]) != math.Float32bits(onceData[i]) {
					t.Fatalf("flat index %d: repeated got %g, single got %g",
						i, manyData[i], onceData[i])
				}
			}
		})
	}
}
