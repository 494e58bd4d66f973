// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

// Options configures strategy selection.
type Options struct {
	ranged    bool
	flat      bool
	unchecked bool
}

// Builder selects an access strategy with fluent configuration.
//
// The zero configuration selects Indexed, the baseline strategy.
// Hints are mutually exclusive; combining them panics at Build.
//
// Example:
//
//	// Baseline double indexing
//	tr := gridx.New().Build()
//
//	// Range-loop traversal
//	tr := gridx.New().Ranged().Build()
//
//	// Bounds-elided pointer walk
//	tr := gridx.New().Unchecked().Build()
type Builder struct {
	opts Options
}

// New creates a strategy builder. The default strategy is Indexed.
func New() *Builder {
	return &Builder{}
}

// Ranged selects range-loop traversal over the row views. The loop
// bounds come from the slices themselves, letting the compiler prove
// the accesses in range.
func (b *Builder) Ranged() *Builder {
	b.opts.ranged = true
	return b
}

// Flat selects manual y*cols+x arithmetic over the contiguous buffer.
func (b *Builder) Flat() *Builder {
	b.opts.flat = true
	return b
}

// Unchecked selects the bounds-elided pointer walk. The caller takes
// on Unchecked's shape-matching obligation; see [Transformer].
func (b *Builder) Unchecked() *Builder {
	b.opts.unchecked = true
	return b
}

// Build creates the configured Transformer.
// Panics if more than one strategy hint was set.
func (b *Builder) Build() Transformer {
	n := 0
	for _, hint := range []bool{b.opts.ranged, b.opts.flat, b.opts.unchecked} {
		if hint {
			n++
		}
	}
	if n > 1 {
		panic("gridx: conflicting strategy hints")
	}
	switch {
	case b.opts.ranged:
		return Ranged{}
	case b.opts.flat:
		return Flat{}
	case b.opts.unchecked:
		return Unchecked{}
	default:
		return Indexed{}
	}
}
