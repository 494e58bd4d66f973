// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Flat is the flattened-index strategy.
//
// It ignores the row views and walks the contiguous backing buffer
// with manual y*cols+x arithmetic: one bounds check per element on a
// single slice instead of two on nested ones.
type Flat struct{}

// Transform implements Transformer.
func (Flat) Transform(dst, src *Grid) {
	rows, cols := src.rows, src.cols
	for y := 0; y < rows; y++ {
		base := y * cols
		for x := 0; x < cols; x++ {
			dst.data[base+x] = src.data[base+x] + float32(x+y)
		}
	}
}

// Strategy implements Transformer.
func (Flat) Strategy() Strategy { return StrategyFlat }
