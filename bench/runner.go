// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench times the gridx access strategies.
//
// The harness follows the original study driver: a configurable number
// of unmeasured warmup calls, one timed baseline call whose duration is
// subtracted from the measured repeat loop, and a single correctness
// check over the final output. Each case runs on a dedicated locked OS
// thread; the caller spin-waits on an atomic completion flag so
// scheduler wakeup latency stays out of the wall-clock window.
package bench

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/gridx"
)

// Case describes one measurement: a strategy applied to a rows x cols
// grid for a number of repeats.
type Case struct {
	Strategy gridx.Strategy
	Rows     int
	Cols     int
	Repeats  int
}

func (c Case) validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("bench: grid dimensions must be >= 1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("bench: repeats must be >= 1, got %d", c.Repeats)
	}
	return nil
}

// Result is the outcome of one measured case.
type Result struct {
	Case

	// Elapsed is the duration of the repeat loop with the baseline
	// call's duration subtracted.
	Elapsed time.Duration
	// Baseline is the duration of the single pre-loop call, an
	// estimate of fixed per-invocation overhead.
	Baseline time.Duration
	// PerCall is Elapsed divided by Repeats.
	PerCall time.Duration
	// PerElementNs is nanoseconds per element access pair.
	PerElementNs float64
	// Checksum folds the final output buffer; identical input and
	// shape must yield identical checksums across strategies.
	Checksum uint64

	// Verified reports whether the final output satisfied the kernel
	// invariant. Mismatch holds the first failing cell when it did not.
	Verified bool
	Mismatch gridx.Mismatch
}

// sink keeps checksums observable so the repeat loop cannot be
// dead-code eliminated.
var sink atomix.Uint64

// maxWaitSpins bounds the busy-wait for the measurement thread before
// the waiter falls back to blocking on the result channel.
const maxWaitSpins = 1 << 16

// Runner measures cases.
type Runner struct {
	// Warmup is the number of unmeasured kernel calls before timing.
	Warmup int
	// Cooldown inserts a backoff pause between cases in RunAll.
	Cooldown bool
}

// Run measures a single case.
func (r *Runner) Run(c Case) (Result, error) {
	if err := c.validate(); err != nil {
		return Result{}, err
	}

	var done atomix.Bool
	out := make(chan Result, 1)
	go func() {
		runtime.LockOSThread()
		out <- r.measure(c)
		done.Store(true)
	}()

	// Spin briefly instead of parking on the channel right away: a
	// blocked waiter is rescheduled on wakeup and the switch could land
	// inside the next case's wall-clock window. Long measurements are
	// dominated by the kernel loop anyway, so after the cap the waiter
	// parks on the receive rather than burning a core for seconds.
	sw := spin.Wait{}
	for i := 0; i < maxWaitSpins && !done.Load(); i++ {
		sw.Once()
	}
	return <-out, nil
}

// RunAll measures every strategy at the given shape and repeat count,
// in study order.
func (r *Runner) RunAll(rows, cols, repeats int) ([]Result, error) {
	strategies := gridx.Strategies()
	results := make([]Result, 0, len(strategies))
	backoff := iox.Backoff{}
	for _, s := range strategies {
		res, err := r.Run(Case{Strategy: s, Rows: rows, Cols: cols, Repeats: repeats})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		if r.Cooldown {
			backoff.Wait()
		}
	}
	return results, nil
}

func (r *Runner) measure(c Case) Result {
	src := gridx.NewGrid(c.Rows, c.Cols)
	dst := gridx.NewGrid(c.Rows, c.Cols)
	src.FillDescending()
	tr := gridx.ForStrategy(c.Strategy)

	for range r.Warmup {
		tr.Transform(dst, src)
	}

	// One timed call approximates fixed per-call overhead. Elapsed
	// reports the repeat loop with that baseline taken out, the same
	// correction the original driver applies per program.
	t0 := time.Now()
	tr.Transform(dst, src)
	baseline := time.Since(t0)

	t1 := time.Now()
	for range c.Repeats {
		tr.Transform(dst, src)
	}
	elapsed := time.Since(t1)
	if elapsed > baseline {
		elapsed -= baseline
	}

	sum := checksum(dst.Data())
	sink.StoreRelaxed(sum)

	res := Result{Case: c, Elapsed: elapsed, Baseline: baseline, Checksum: sum}
	res.PerCall = elapsed / time.Duration(c.Repeats)
	res.PerElementNs = float64(elapsed.Nanoseconds()) /
		float64(c.Repeats) / float64(c.Rows*c.Cols)
	res.Mismatch, res.Verified = gridx.Verify(dst, src)
	return res
}

// checksum folds the buffer's bit patterns with FNV-1a so the result
// depends on every element and on element order.
func checksum(data []float32) uint64 {
	h := uint64(1469598103934665603)
	for _, v := range data {
		h ^= uint64(math.Float32bits(v))
		h *= 1099511628211
	}
	return h
}

// WriteReport writes an aligned text table of results to w.
func WriteReport(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-10s %9s %10s %14s %12s %14s\n",
		"strategy", "shape", "repeats", "elapsed", "per-call", "ns/element")
	for _, r := range results {
		note := ""
		if !r.Verified {
			note = fmt.Sprintf("  MISMATCH at (%d,%d): got %g want %g",
				r.Mismatch.Y, r.Mismatch.X, r.Mismatch.Got, r.Mismatch.Want)
		}
		fmt.Fprintf(w, "%-10s %9s %10d %14s %12s %14.3f%s\n",
			r.Strategy, fmt.Sprintf("%dx%d", r.Rows, r.Cols), r.Repeats,
			r.Elapsed, r.PerCall, r.PerElementNs, note)
	}
}
