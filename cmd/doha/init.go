//go:build cgo

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TeneikaAskew/doha-sub000/internal/embeddings"
)

var forceDownload bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&forceDownload, "force", "f", false, "Force re-download even if ONNX runtime exists")
}

// initCmd downloads the dependencies the semantic signal needs.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize embedding dependencies",
	Long: `Initialize doha by downloading required dependencies.

Currently this downloads the ONNX runtime library required for local
embeddings with FastEmbed. The library is installed to:
  ~/.config/doha/lib/

If ONNX_PATH environment variable is set, that path takes precedence.

Examples:
  # Initialize doha (download ONNX runtime)
  doha init

  # Force re-download even if already installed
  doha init --force`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	if !forceDownload {
		if path := embeddings.ONNXLibraryPath(); path != "" {
			cmd.Printf("ONNX runtime already installed at: %s\n", path)
			cmd.Println("Use --force to re-download.")
			return nil
		}
	}

	cmd.Printf("Downloading ONNX runtime v%s...\n", embeddings.DefaultONNXRuntimeVersion)

	if forceDownload {
		if err := embeddings.DownloadONNXRuntime(cmd.Context(), ""); err != nil {
			return fmt.Errorf("failed to download ONNX runtime: %w", err)
		}
	}

	// Downloads when missing, then resolves the installed path.
	path, err := embeddings.EnsureONNXRuntime(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to install ONNX runtime: %w", err)
	}

	cmd.Printf("Successfully installed ONNX runtime to: %s\n", path)
	return nil
}
