package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"joy/internal/driver"
	"joy/internal/parser"
	"joy/internal/project"
)

// resolveOptions merges joy.toml (found above target) with command-line
// flags. Flags win when they were set explicitly.
func resolveOptions(cmd *cobra.Command, flags *globalFlags, target string) (driver.Options, *project.Manifest, error) {
	startDir := target
	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifest, _, err := project.LoadManifest(startDir)
	if err != nil {
		return driver.Options{}, nil, err
	}
	cfg := project.DefaultConfig()
	if manifest != nil {
		cfg = manifest.Config
	}

	opts := driver.Options{
		MaxDiagnostics: cfg.Parse.MaxDiagnostics,
		Jobs:           cfg.Parse.Jobs,
		Extensions:     cfg.Parse.Extensions,
		Timings:        flags.timings,
	}
	if cmd.Flags().Changed("max-diagnostics") {
		opts.MaxDiagnostics = flags.maxDiagnostics
	}

	consValue := cfg.Parse.ConsOutsideQuotation
	if flags.cons != "" {
		consValue = flags.cons
	}
	policy, ok := parser.ParseConsPolicy(consValue)
	if !ok {
		return driver.Options{}, nil, fmt.Errorf("invalid --cons value %q (expected error|operator)", consValue)
	}
	opts.ConsPolicy = policy

	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		jobs, jobsErr := cmd.Flags().GetInt("jobs")
		if jobsErr != nil {
			return driver.Options{}, nil, fmt.Errorf("failed to get jobs flag: %w", jobsErr)
		}
		opts.Jobs = jobs
	}

	if manifest != nil && cfg.Cache.Enabled && !flagBool(cmd, "no-cache") {
		cache, cacheErr := driver.OpenDiskCache(manifest.CacheDir())
		if cacheErr != nil {
			return driver.Options{}, nil, fmt.Errorf("failed to open cache: %w", cacheErr)
		}
		opts.Cache = cache
	}
	return opts, manifest, nil
}

// flagBool returns a local bool flag, false when the command lacks it.
func flagBool(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Lookup(name) == nil {
		return false
	}
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}
