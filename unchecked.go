// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

import "unsafe"

// Unchecked is the bounds-elided strategy.
//
// It walks both backing buffers with raw pointer arithmetic and pays
// no bounds checks at all. Out-of-range access is undefined behavior:
// the caller must guarantee dst has capacity for every element of src.
// All unsafe code is confined to this file.
type Unchecked struct{}

// Transform implements Transformer.
func (Unchecked) Transform(dst, src *Grid) {
	sp := unsafe.Pointer(unsafe.SliceData(src.data))
	dp := unsafe.Pointer(unsafe.SliceData(dst.data))
	const size = unsafe.Sizeof(float32(0))

	i := uintptr(0)
	for y := 0; y < src.rows; y++ {
		for x := 0; x < src.cols; x++ {
			*(*float32)(unsafe.Add(dp, i*size)) =
				*(*float32)(unsafe.Add(sp, i*size)) + float32(x+y)
			i++
		}
	}
}

// Strategy implements Transformer.
func (Unchecked) Strategy() Strategy { return StrategyUnchecked }
