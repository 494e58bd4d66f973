// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gridx measures the cost of accessing elements of a 2D
// rectangular array under different indexing strategies.
//
// The kernel under study is deliberately trivial: given an input grid,
// add to each element the sum of its two indices and store the result
// in a same-shaped output grid:
//
//	dst[y][x] = src[y][x] + x + y
//
// The operation is easy to code but hard to optimise away entirely,
// which makes it a useful probe for how much of the element-access
// cost comes from the indexing machinery (bounds checks, address
// arithmetic, iterator overhead) rather than from the arithmetic.
//
// # Quick Start
//
//	src := gridx.NewGrid(10, 2000)
//	dst := gridx.NewGrid(10, 2000)
//	src.FillDescending()
//
//	tr := gridx.ForStrategy(gridx.StrategyFlat)
//	tr.Transform(dst, src)
//
//	if m, ok := gridx.Verify(dst, src); !ok {
//	    fmt.Printf("mismatch at (%d,%d): got %g want %g\n", m.Y, m.X, m.Got, m.Want)
//	}
//
// # Access Strategies
//
// Four behaviorally identical strategies implement the same contract:
//
//	StrategyIndexed   - dst.Row(y)[x] double indexing, bounds checks on both indices
//	StrategyRanged    - range loops over row views, bounds provable by the compiler
//	StrategyFlat      - manual y*cols+x arithmetic over the contiguous buffer
//	StrategyUnchecked - raw pointer walk, no bounds checks at all
//
// All four produce bit-identical output for identical input; only the
// element-access machinery differs. Select one directly with
// [ForStrategy], by configuration name with [ParseStrategy], or through
// the builder:
//
//	tr := gridx.New().Ranged().Build()
//
// # Memory Layout
//
// A [Grid] is backed by a single contiguous row-major buffer. Row views
// are subslices of that buffer, so nested indexing, flat arithmetic,
// range traversal and pointer walking all touch the same allocation and
// the comparison isolates access cost, not layout cost.
//
// Every strategy traverses rows outer, columns inner. Elements of a row
// are contiguous in memory; working along them is the access pattern
// under study, and column-outer traversal is not an implementation
// option.
//
// # Verification
//
// [Verify] scans the output in the same row-outer order and reports the
// first cell that violates the kernel invariant. The library returns
// the mismatch as data; printing is left to the caller.
//
// # Benchmark Harness
//
// Package [code.hybscloud.com/gridx/bench] provides a timing harness in
// the manner of the original study driver: warmup calls, a single
// baseline call subtracted from the measured repeat loop, and a
// checksum sink that keeps the kernel from being dead-code eliminated.
// The cmd/gridx command wraps it behind a small CLI.
//
// # Concurrency
//
// The kernel is single-threaded and synchronous with no suspension
// points. That minimalism is the relevant property: it isolates raw
// memory-access cost from scheduling overhead. Transform may be called
// from multiple goroutines only with disjoint destination grids.
//
// # Dependencies
//
// This package is dependency-free. The bench harness uses
// [code.hybscloud.com/atomix] for its checksum sink and completion
// flag, [code.hybscloud.com/spin] for CPU pause while waiting on the
// measurement thread, and [code.hybscloud.com/iox] for backoff between
// cases.
package gridx
