// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"code.hybscloud.com/gridx/internal/config"
)

// applyArgs overlays the optional positional arguments
// [repeats] [rows] [cols] onto cfg. A non-numeric argument keeps the
// configured value and prints a warning to w, as the original study
// harness does. Extra arguments are ignored.
func applyArgs(cfg *config.Config, args []string, w io.Writer) {
	set := func(s string, dst *int, what string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(w, "%s invalid, using %d\n", what, *dst)
			return
		}
		*dst = n
	}
	if len(args) > 0 {
		set(args[0], &cfg.Repeats, "Repeats")
	}
	if len(args) > 1 {
		set(args[1], &cfg.Rows, "Rows")
	}
	if len(args) > 2 {
		set(args[2], &cfg.Cols, "Columns")
	}
}
