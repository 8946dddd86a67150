// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/icudash/internal/testable"
)

// newTestCmd redirects the global rootCmd's I/O to buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag to its default so tests sharing rootCmd do
// not leak values into each other.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{watchCmd, snapshotCmd, mcpServeCmd, configShowCmd, configPathCmd, versionCmd} {
		c.Flags().VisitAll(reset)
		if h := c.Flags().Lookup("help"); h != nil {
			_ = h.Value.Set("false")
		}
	}
	rootCmd.SetIn(nil)
}

// isolate runs the test in an empty directory with no global config and
// returns a running aggregation endpoint.
func isolate(t *testing.T) (*testable.Aggregator, string) {
	t.Helper()
	resetFlags()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ICUDASH_TOKEN", "")

	agg := testable.NewAggregator()
	srv := agg.Start()
	t.Cleanup(srv.Close)
	return agg, srv.URL
}

// writeTestFile creates a file (and any necessary parent directories) under dir.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", parent, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
