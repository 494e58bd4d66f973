// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gridx

import (
	"fmt"
	"strings"
)

// Strategy identifies one of the equivalent grid access strategies.
type Strategy uint8

const (
	// StrategyIndexed double-indexes the row views with bounds checks
	// on both indices.
	StrategyIndexed Strategy = iota
	// StrategyRanged traverses rows and elements with range loops.
	StrategyRanged
	// StrategyFlat does manual y*cols+x arithmetic on the flat buffer.
	StrategyFlat
	// StrategyUnchecked walks both buffers with raw pointers.
	StrategyUnchecked
)

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	switch s {
	case StrategyIndexed:
		return "indexed"
	case StrategyRanged:
		return "ranged"
	case StrategyFlat:
		return "flat"
	case StrategyUnchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy.
// Names are matched case-insensitively with surrounding space ignored.
func ParseStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "indexed":
		return StrategyIndexed, true
	case "ranged":
		return StrategyRanged, true
	case "flat":
		return StrategyFlat, true
	case "unchecked":
		return StrategyUnchecked, true
	default:
		return StrategyIndexed, false
	}
}

// Strategies returns all strategies in study order.
func Strategies() []Strategy {
	return []Strategy{StrategyIndexed, StrategyRanged, StrategyFlat, StrategyUnchecked}
}

// ForStrategy returns the Transformer implementing s.
// Panics on an unknown strategy.
func ForStrategy(s Strategy) Transformer {
	switch s {
	case StrategyIndexed:
		return Indexed{}
	case StrategyRanged:
		return Ranged{}
	case StrategyFlat:
		return Flat{}
	case StrategyUnchecked:
		return Unchecked{}
	default:
		panic("gridx: unknown strategy")
	}
}
