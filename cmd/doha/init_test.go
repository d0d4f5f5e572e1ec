//go:build cgo

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func findInitCmd(t *testing.T) *cobra.Command {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "init" {
			return cmd
		}
	}
	t.Fatal("init command not found in rootCmd")
	return nil
}

func TestInitCmd_Help(t *testing.T) {
	cmd := findInitCmd(t)

	if cmd.Short == "" {
		t.Error("init command should have Short description")
	}
	if !strings.Contains(strings.ToLower(cmd.Long), "onnx") {
		t.Error("init command Long description should mention ONNX")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("init command should have --force flag")
	}
}

func TestInitCmd_AlreadyInstalled(t *testing.T) {
	libPath := filepath.Join(t.TempDir(), "libonnxruntime.so")
	if err := os.WriteFile(libPath, []byte("fake lib"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ONNX_PATH", libPath)

	cmd := findInitCmd(t)
	cmd.SetContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	// Runs without downloading: the env path short-circuits.
	if err := cmd.RunE(cmd, []string{}); err != nil {
		t.Errorf("init command failed: %v", err)
	}
	if !strings.Contains(out.String(), "already installed") {
		t.Errorf("output = %q, want already-installed notice", out.String())
	}
	if !strings.Contains(out.String(), libPath) {
		t.Errorf("output = %q, want library path %s", out.String(), libPath)
	}
}
