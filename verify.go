// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Expected returns the value the kernel contract requires at (y, x).
func Expected(src *Grid, y, x int) float32 {
	return src.row[y][x] + float32(x+y)
}

// Verify checks dst against src cell by cell, rows outer and columns
// inner, and reports the first cell that violates the kernel
// invariant. The scan stops at the first failure. ok is true when the
// invariant holds everywhere. dst and src must have the same shape.
func Verify(dst, src *Grid) (m Mismatch, ok bool) {
	for y := 0; y < src.rows; y++ {
		for x := 0; x < src.cols; x++ {
			want := src.row[y][x] + float32(x+y)
			if got := dst.row[y][x]; got != want {
				return Mismatch{Y: y, X: x, Got: got, Want: want}, false
			}
		}
	}
	return Mismatch{}, true
}
