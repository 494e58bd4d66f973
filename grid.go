// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Grid is a rectangular 2D array of float32 values in row-major layout.
//
// A Grid is backed by one contiguous buffer; row views are subslices of
// that buffer. The same allocation can therefore be traversed by nested
// indexing, flat index arithmetic, range iteration or raw pointer
// walking, which is what the access-strategy comparison relies on.
//
// Dimensions are fixed at creation; a Grid is never resized.
type Grid struct {
	rows, cols int
	data       []float32
	row        [][]float32
}

// NewGrid creates a rows x cols grid with every cell zero.
// Panics if rows < 1 or cols < 1.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic("gridx: grid dimensions must be >= 1")
	}
	g := &Grid{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
		row:  make([][]float32, rows),
	}
	for y := range g.row {
		g.row[y] = g.data[y*cols : (y+1)*cols : (y+1)*cols]
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the value at row y, column x.
func (g *Grid) At(y, x int) float32 { return g.row[y][x] }

// Set stores v at row y, column x.
func (g *Grid) Set(y, x int, v float32) { g.row[y][x] = v }

// Row returns the view of row y. The slice aliases the grid's backing
// buffer; writes through it are visible in the grid.
func (g *Grid) Row(y int) []float32 { return g.row[y] }

// Data returns the contiguous row-major backing buffer. Element (y, x)
// lives at index y*cols+x.
func (g *Grid) Data() []float32 { return g.data }

// FillDescending sets every cell to float32(cols - x + rows - y), the
// study's deterministic input pattern. With this input the kernel
// produces a constant output grid, which makes a cheap regression
// check.
func (g *Grid) FillDescending() {
	for y := 0; y < g.rows; y++ {
		r := g.row[y]
		for x := range r {
			r[x] = float32(g.cols - x + g.rows - y)
		}
	}
}
