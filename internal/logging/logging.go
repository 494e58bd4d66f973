// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging configures the harness logger. Diagnostics go to
// stderr so they never mix with the study output on stdout.
package logging

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// Options selects handler format and minimum level.
type Options struct {
	Level string
	JSON  bool
}

var def atomic.Value

func init() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	def.Store(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

// Configure replaces the default logger.
func Configure(opts Options) {
	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(os.Stderr, hopts)
	} else {
		h = slog.NewTextHandler(os.Stderr, hopts)
	}
	def.Store(slog.New(h))
}

// InitFromEnv configures the logger from GRIDX_LOG_LEVEL and
// GRIDX_LOG_JSON.
func InitFromEnv() {
	json := false
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("GRIDX_LOG_JSON"))); err == nil {
		json = b
	}
	Configure(Options{Level: os.Getenv("GRIDX_LOG_LEVEL"), JSON: json})
}

// L returns the current logger.
func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
