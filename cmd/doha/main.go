// Package main implements the doha CLI for analyzing DOHA security-clearance
// decision documents.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath overrides the default config file location.
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doha",
	Short: "Analyze DOHA security-clearance decision documents",
	Long: `doha extracts outcomes, adjudicative guidelines, and formal findings from
DOHA hearing and appeal decisions, and assesses each of the 13 SEAD-4
guidelines for relevance and severity.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/doha/config.yaml)")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(guidelinesCmd)
}
