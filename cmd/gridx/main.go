// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command gridx runs the 2D array access study.
//
// Invocation:
//
//	gridx [repeats] [rows] [cols]
//
// All arguments are optional. Defaults come from gridx.yml (if
// present), GRIDX__* environment variables, and the built-in study
// values. A non-numeric argument keeps the configured value and prints
// a warning. With compare enabled (GRIDX__COMPARE=true or
// `compare: true` in gridx.yml) every strategy is timed and a report
// table is written instead.
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/gridx"
	"code.hybscloud.com/gridx/bench"
	"code.hybscloud.com/gridx/internal/config"
	"code.hybscloud.com/gridx/internal/logging"
)

const configFile = "gridx.yml" // optional

func main() {
	logging.InitFromEnv()
	log := logging.L()

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	applyArgs(&cfg, os.Args[1:], os.Stdout)

	if cfg.Rows < 1 || cfg.Cols < 1 {
		log.Error("grid dimensions must be positive",
			"rows", cfg.Rows, "cols", cfg.Cols)
		os.Exit(1)
	}

	strategy, _ := gridx.ParseStrategy(cfg.Strategy)
	fmt.Printf("Arrays have %d rows of %d columns, repeats = %d, strategy = %s\n",
		cfg.Rows, cfg.Cols, cfg.Repeats, strategy)

	if cfg.Compare {
		r := bench.Runner{Warmup: cfg.Warmup, Cooldown: true}
		results, err := r.RunAll(cfg.Rows, cfg.Cols, cfg.Repeats)
		if err != nil {
			log.Error("bench", "err", err)
			os.Exit(1)
		}
		bench.WriteReport(os.Stdout, results)
		return
	}

	src := gridx.NewGrid(cfg.Rows, cfg.Cols)
	dst := gridx.NewGrid(cfg.Rows, cfg.Cols)
	src.FillDescending()

	tr := gridx.ForStrategy(strategy)
	for range cfg.Repeats {
		tr.Transform(dst, src)
	}

	// Report only the first mismatch; the scan stops there and the
	// process still exits normally. The fourth field is the expected
	// value for the cell, not the raw input value.
	if m, ok := gridx.Verify(dst, src); !ok {
		fmt.Printf("Error %d %d %g %g\n", m.X, m.Y, m.Got, m.Want)
	}
}
