// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transpose

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ConfigEnvVar is the environment variable with the default configuration of the transposers.
// See ParseConfig for its format.
const ConfigEnvVar = "TRANSPOSE_CONFIG"

// Config holds the default values used for the zero fields of Request.Tuning and Request.Layout.
type Config struct {
	// NumThreads used to parallelize Execute. Defaults to runtime.NumCPU().
	NumThreads int

	// TuneLoopNum and TuneParaNum are the number of loop orders and parallelization strategies
	// measured during planning. 0 disables the measurements, negative values measure all the
	// candidates kept by the heuristics.
	TuneLoopNum, TuneParaNum int

	// HeurLoopNum and HeurParaNum are the number of candidates kept by the heuristics.
	// Negative values keep all of them.
	HeurLoopNum, HeurParaNum int

	// Timeout of the measurements during planning. Negative values mean no limit.
	Timeout time.Duration

	// Layout of the tensors, RowMajor by default.
	Layout Layout
}

// BuiltinConfig returns the configuration used when ConfigEnvVar is not set.
func BuiltinConfig() Config {
	return Config{
		NumThreads:  runtime.NumCPU(),
		HeurLoopNum: 5,
		HeurParaNum: 5,
		Timeout:     50 * time.Millisecond,
		Layout:      RowMajor,
	}
}

// ParseConfig parses a comma-separated list of key=value options, applied on top of BuiltinConfig.
//
// The keys are: "threads", "tune_loop", "tune_para", "heur_loop", "heur_para" (integers),
// "timeout" (a time.Duration, or an integer number of milliseconds) and "layout" ("row" or "col").
//
// Example: TRANSPOSE_CONFIG="threads=4,tune_loop=3,tune_para=3,timeout=100ms"
func ParseConfig(config string) (Config, error) {
	cfg := BuiltinConfig()
	for _, option := range strings.Split(config, ",") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		key, value, found := strings.Cut(option, "=")
		if !found {
			return cfg, errors.Errorf("configuration option %q is missing a value, expected key=value", option)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		var (
			intPtr *int
			err    error
		)
		switch key {
		case "threads":
			intPtr = &cfg.NumThreads
		case "tune_loop":
			intPtr = &cfg.TuneLoopNum
		case "tune_para":
			intPtr = &cfg.TuneParaNum
		case "heur_loop":
			intPtr = &cfg.HeurLoopNum
		case "heur_para":
			intPtr = &cfg.HeurParaNum
		case "timeout":
			cfg.Timeout, err = parseTimeout(value)
		case "layout":
			cfg.Layout, err = ParseLayout(value)
		default:
			return cfg, errors.Errorf("unknown configuration option %q in %q -- valid options are "+
				"threads, tune_loop, tune_para, heur_loop, heur_para, timeout and layout", key, config)
		}
		if intPtr != nil {
			*intPtr, err = strconv.Atoi(value)
		}
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to parse configuration option %q", option)
		}
	}
	if cfg.NumThreads <= 0 {
		return cfg, errors.Errorf("configuration option threads=%d must be positive", cfg.NumThreads)
	}
	return cfg, nil
}

func parseTimeout(value string) (time.Duration, error) {
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(value)
}

var defaultConfig = sync.OnceValue(func() Config {
	config, found := os.LookupEnv(ConfigEnvVar)
	if !found {
		return BuiltinConfig()
	}
	cfg, err := ParseConfig(config)
	if err != nil {
		klog.Errorf("Ignoring $%s=%q: %+v", ConfigEnvVar, config, err)
		return BuiltinConfig()
	}
	klog.V(1).Infof("transpose configuration from $%s: %+v", ConfigEnvVar, cfg)
	return cfg
})

// DefaultConfig returns the configuration parsed from ConfigEnvVar, or BuiltinConfig if it is not set
// or invalid. The environment is read only once.
func DefaultConfig() Config {
	return defaultConfig()
}
