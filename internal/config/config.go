// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the harness configuration: an optional YAML
// file overlaid by environment variables, with study defaults filling
// whatever remains unset. Positional CLI arguments are applied on top
// by the caller.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"code.hybscloud.com/gridx"
)

// Study defaults, matching the original harness.
const (
	DefaultRepeats = 100000
	DefaultRows    = 5
	DefaultCols    = 4
	DefaultWarmup  = 3
)

// Config holds the harness settings.
type Config struct {
	Repeats  int    `koanf:"repeats"`
	Rows     int    `koanf:"rows"`
	Cols     int    `koanf:"cols"`
	Strategy string `koanf:"strategy"`
	Compare  bool   `koanf:"compare"`
	Warmup   int    `koanf:"warmup"`
}

// Load merges YAML (if present) with env vars
// (prefix `GRIDX__`, delimiter `__`). A missing file is not an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// The callback must strip the prefix itself; otherwise the full
	// variable name stays in the key and GRIDX__ROWS unflattens to the
	// nested path GRIDX.ROWS instead of binding to the rows tag.
	_ = k.Load(env.Provider("GRIDX__", "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GRIDX__"))
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.Repeats == 0 {
		c.Repeats = DefaultRepeats
	}
	if c.Rows == 0 {
		c.Rows = DefaultRows
	}
	if c.Cols == 0 {
		c.Cols = DefaultCols
	}
	if c.Warmup == 0 {
		c.Warmup = DefaultWarmup
	}
	if _, ok := gridx.ParseStrategy(c.Strategy); !ok {
		c.Strategy = gridx.StrategyIndexed.String()
	}
}
