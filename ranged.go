// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Ranged is the range-iteration strategy.
//
// Rows and elements are traversed with range loops over the row views,
// pairing each source row with its destination row. The loop bounds
// come from the slices themselves, which lets the compiler prove the
// accesses in range and elide the per-element checks Indexed pays for.
type Ranged struct{}

// Transform implements Transformer.
func (Ranged) Transform(dst, src *Grid) {
	for y, srow := range src.row {
		drow := dst.row[y]
		for x, v := range srow {
			drow[x] = v + float32(x+y)
		}
	}
}

// Strategy implements Transformer.
func (Ranged) Strategy() Strategy { return StrategyRanged }
