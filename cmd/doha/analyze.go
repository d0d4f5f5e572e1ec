package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TeneikaAskew/doha-sub000/internal/config"
	"github.com/TeneikaAskew/doha-sub000/internal/logging"
	"github.com/TeneikaAskew/doha-sub000/pkg/analyzer"
)

var (
	analyzeMode       string
	analyzeDocType    string
	analyzeEmbeddings bool
	analyzeCompact    bool
	analyzeVerbose    bool
)

// analyzeCmd runs the full analysis pipeline over one decision document.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a decision document",
	Long: `Analyze a DOHA decision document from a file or stdin and print the
result as JSON.

Examples:
  # Analyze a file
  doha analyze decision.txt

  # Analyze from stdin
  cat decision.txt | doha analyze -

  # Use the ensemble scorer with local embeddings
  # (run 'doha init' first to install the ONNX runtime)
  doha analyze --mode ensemble --embeddings decision.txt

  # Force appeal-decision handling
  doha analyze --doc-type appeal appeal.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "", "analysis mode: native or ensemble (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeDocType, "doc-type", "auto", "document type: auto, hearing, or appeal")
	analyzeCmd.Flags().BoolVar(&analyzeEmbeddings, "embeddings", false, "enable the semantic signal via local embeddings")
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "print compact JSON instead of indented")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "log pipeline progress to stderr")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if analyzeMode != "" {
		cfg.Analysis.Mode = config.AnalysisMode(analyzeMode)
	}
	if analyzeEmbeddings {
		cfg.Analysis.Mode = config.ModeEnsemble
		cfg.Embeddings.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := zap.NewNop()
	if analyzeVerbose {
		log, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		defer func() { _ = logging.Sync(log) }()
	}

	docType, err := parseDocType(analyzeDocType)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	engine, err := analyzer.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	result, err := engine.Analyze(ctx, string(text), docType)
	if err != nil {
		return err
	}
	if num, year := analyzer.CaseInfo(args[0]); num != "" {
		result.Metadata.CaseNumber = num
		result.Metadata.CaseYear = year
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !analyzeCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadWithFile(configPath)
	}
	return config.Load()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func parseDocType(s string) (analyzer.DocType, error) {
	switch analyzer.DocType(s) {
	case analyzer.DocTypeAuto, analyzer.DocTypeHearing, analyzer.DocTypeAppeal:
		return analyzer.DocType(s), nil
	default:
		return "", fmt.Errorf("invalid doc-type %q: must be auto, hearing, or appeal", s)
	}
}
