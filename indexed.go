// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Indexed is the double-indexing strategy.
//
// Every access goes through the grid's row views with Go's bounds
// checks active on both indices. This is the straightforward rendering
// of dst[y][x] = src[y][x] + x + y and the baseline the other
// strategies are measured against.
type Indexed struct{}

// Transform implements Transformer.
func (Indexed) Transform(dst, src *Grid) {
	rows, cols := src.rows, src.cols
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dst.row[y][x] = src.row[y][x] + float32(x+y)
		}
	}
}

// Strategy implements Transformer.
func (Indexed) Strategy() Strategy { return StrategyIndexed }
