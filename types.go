// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Transformer applies the study's kernel to a pair of grids.
//
// Transform overwrites every element of dst with the corresponding
// element of src plus the sum of its row and column index:
//
//	dst[y][x] = src[y][x] + x + y
//
// Iteration is rows outer, columns inner. Row elements are contiguous
// in memory and working along them is the access pattern under study;
// column-outer traversal is not an option an implementation may take.
//
// Transform does not allocate, does not mutate src and has no error
// conditions. Because every cell of dst is written, dst needs no
// initialisation and the same buffer can be reused across calls
// without resetting it. All implementations produce bit-identical
// output for identical input.
//
// dst and src must have the same shape. The checked strategies panic
// on a smaller dst through ordinary slice bounds checks; Unchecked
// elides those checks, so there a shape violation is undefined
// behavior and the caller alone is responsible for never causing one.
type Transformer interface {
	// Transform overwrites dst with src plus index sums.
	Transform(dst, src *Grid)

	// Strategy reports which access strategy the implementation uses.
	Strategy() Strategy
}

// Mismatch identifies the first cell where a transformed grid differs
// from the value the kernel contract requires. Want is the expected
// output value src[y][x] + x + y, not the raw input value.
type Mismatch struct {
	Y, X int
	Got  float32
	Want float32
}
