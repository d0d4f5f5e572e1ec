// Package analyzer composes extraction and assessment into a single
// document-analysis engine.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/TeneikaAskew/doha-sub000/internal/assessment"
	"github.com/TeneikaAskew/doha-sub000/internal/config"
	"github.com/TeneikaAskew/doha-sub000/internal/embeddings"
	"github.com/TeneikaAskew/doha-sub000/internal/ensemble"
	"github.com/TeneikaAskew/doha-sub000/internal/extraction"
	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

var (
	// ErrEmptyDocument is returned when the document has no content.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrNilConfig is returned when no configuration is provided.
	ErrNilConfig = errors.New("config is nil")
	// ErrEnsembleDisabled is returned when ensemble scoring is requested on
	// an engine configured for native analysis.
	ErrEnsembleDisabled = errors.New("ensemble scorer not configured")
)

// DocType selects how the outcome is classified.
type DocType string

const (
	// DocTypeAuto detects appeal decisions from their header language.
	DocTypeAuto DocType = "auto"
	// DocTypeHearing forces hearing-decision classification.
	DocTypeHearing DocType = "hearing"
	// DocTypeAppeal forces appeal-decision resolution.
	DocTypeAppeal DocType = "appeal"
)

// Metadata are the document-level facts extracted alongside classification.
// CaseNumber and CaseYear come from the source file name or URL, not the
// document text; see CaseInfo.
type Metadata struct {
	CaseNumber        string   `json:"case_number,omitempty"`
	CaseYear          int      `json:"case_year,omitempty"`
	Date              string   `json:"date"`
	Judge             string   `json:"judge"`
	Summary           string   `json:"summary"`
	Allegations       []string `json:"allegations"`
	MitigatingFactors []string `json:"mitigating_factors"`
}

// Result is the full analysis of one decision document.
type Result struct {
	DocType        DocType                                     `json:"doc_type"`
	Outcome        sead4.Outcome                               `json:"outcome"`
	Guidelines     []sead4.GuidelineCode                       `json:"guidelines"`
	FormalFindings map[sead4.GuidelineCode]sead4.FormalFinding `json:"formal_findings,omitempty"`
	Metadata       Metadata                                    `json:"metadata"`
	Assessments    []sead4.GuidelineAssessment                 `json:"assessments"`
	Scores         map[sead4.GuidelineCode]ensemble.Scores     `json:"scores,omitempty"`
	Overall        sead4.OverallAssessment                     `json:"overall"`
}

// Engine runs the extraction and assessment pipeline over decision texts.
// It is safe for concurrent use.
type Engine struct {
	cfg *config.Config
	log *zap.Logger

	outcome    *extraction.OutcomeClassifier
	appeal     *extraction.AppealResolver
	guidelines *extraction.GuidelineExtractor
	findings   *extraction.FormalFindingsExtractor
	metadata   *extraction.MetadataExtractor

	native *assessment.NativeClassifier
	scorer *ensemble.Scorer
	synth  *assessment.Synthesizer

	embedder embeddings.Embedder
}

// New builds an engine from configuration. In ensemble mode with embeddings
// enabled, an embedding provider failure degrades to scoring without the
// semantic signal rather than failing construction.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("analyzer")

	e := &Engine{
		cfg:        cfg,
		log:        log,
		outcome:    extraction.NewOutcomeClassifier(),
		appeal:     extraction.NewAppealResolver(),
		guidelines: extraction.NewGuidelineExtractor(),
		findings:   extraction.NewFormalFindingsExtractor(),
		metadata:   extraction.NewMetadataExtractor(),
		native:     assessment.NewNativeClassifier(log),
		synth:      assessment.NewSynthesizer(),
	}

	if cfg.Analysis.Mode == config.ModeEnsemble {
		if cfg.Embeddings.Enabled {
			embedder, err := embeddings.NewFastEmbedProvider(embeddings.FastEmbedConfig{
				Model:     cfg.Embeddings.Model,
				CacheDir:  cfg.Embeddings.CacheDir,
				MaxLength: cfg.Embeddings.MaxLength,
			})
			if err != nil {
				log.Warn("embedding provider unavailable, semantic signal disabled",
					zap.Error(err))
			} else {
				e.embedder = embedder
			}
		}

		scorer, err := ensemble.NewScorer(ctx, ensemble.Config{
			Weights: ensemble.Weights{
				NGram:      cfg.Ensemble.Weights.NGram,
				TFIDF:      cfg.Ensemble.Weights.TFIDF,
				Semantic:   cfg.Ensemble.Weights.Semantic,
				Contextual: cfg.Ensemble.Weights.Contextual,
			},
			Threshold: cfg.Ensemble.Threshold,
		}, e.embedder, log)
		if err != nil {
			return nil, fmt.Errorf("building ensemble scorer: %w", err)
		}
		e.scorer = scorer
	}

	return e, nil
}

// Close releases the embedding provider, if any.
func (e *Engine) Close() error {
	if e.embedder == nil {
		return nil
	}
	return e.embedder.Close()
}

// ClassifyOutcome classifies the document's final disposition, resolving the
// document type first when docType is auto.
func (e *Engine) ClassifyOutcome(text string, docType DocType) sead4.Outcome {
	if e.resolveDocType(text, docType) == DocTypeAppeal {
		return e.appeal.Resolve(text)
	}
	return e.outcome.Classify(text)
}

// ExtractGuidelines returns the guideline codes cited in the document, in
// order of first appearance.
func (e *Engine) ExtractGuidelines(text string) []sead4.GuidelineCode {
	return e.guidelines.Extract(text)
}

// ExtractFormalFindings parses the document's Formal Findings section.
func (e *Engine) ExtractFormalFindings(text string) map[sead4.GuidelineCode]sead4.FormalFinding {
	return e.findings.Extract(text)
}

// ExtractMetadata pulls the document-level facts: date, judge, summary, SOR
// allegations, and mitigating factors.
func (e *Engine) ExtractMetadata(text string) Metadata {
	return Metadata{
		Date:              e.metadata.Date(text),
		Judge:             e.metadata.Judge(text),
		Summary:           e.metadata.Summarize(text),
		Allegations:       e.metadata.Allegations(text),
		MitigatingFactors: e.metadata.MitigatingFactors(text),
	}
}

// AssessNative runs the keyword relevance classifier, returning exactly one
// assessment per guideline code A-M.
func (e *Engine) AssessNative(text string) []sead4.GuidelineAssessment {
	return e.native.Assess(text)
}

// AssessEnsemble runs the multi-signal scorer. The engine must be configured
// with analysis mode ensemble.
func (e *Engine) AssessEnsemble(ctx context.Context, text string) ([]sead4.GuidelineAssessment, map[sead4.GuidelineCode]ensemble.Scores, error) {
	if e.scorer == nil {
		return nil, nil, ErrEnsembleDisabled
	}
	return e.scorer.Assess(ctx, text)
}

// Synthesize aggregates guideline assessments into an overall
// recommendation. stats carries precomputed precedent statistics and may be
// nil.
func (e *Engine) Synthesize(assessments []sead4.GuidelineAssessment, stats *sead4.PrecedentStats) sead4.OverallAssessment {
	return e.synth.Synthesize(assessments, stats)
}

// ComputeStats derives outcome statistics from retrieved precedents, for
// callers that hold precedents rather than precomputed stats. Returns nil
// for an empty list.
func ComputeStats(precedents []sead4.Precedent) *sead4.PrecedentStats {
	return assessment.ComputeStats(precedents)
}

// CaseInfo derives the case number and decision year from a decision file
// name or URL. Returns "" and 0 when no case number is present.
func CaseInfo(path string) (string, int) {
	caseNumber := extraction.CaseNumberFromPath(path)
	return caseNumber, extraction.CaseYear(caseNumber)
}

// Analyze runs the full pipeline over one document.
func (e *Engine) Analyze(ctx context.Context, text string, docType DocType) (*Result, error) {
	return e.AnalyzeWithPrecedents(ctx, text, docType, nil)
}

// AnalyzeWithPrecedents runs the full pipeline, folding precedent outcome
// statistics into the overall recommendation. Precedents only influence the
// native synthesis path.
func (e *Engine) AnalyzeWithPrecedents(ctx context.Context, text string, docType DocType, precedents []sead4.Precedent) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	resolved := e.resolveDocType(text, docType)

	result := &Result{
		DocType:    resolved,
		Outcome:    e.ClassifyOutcome(text, resolved),
		Guidelines: e.ExtractGuidelines(text),
		Metadata:   e.ExtractMetadata(text),
	}
	if resolved == DocTypeHearing {
		result.FormalFindings = e.ExtractFormalFindings(text)
	}

	if e.scorer != nil {
		assessments, scores, err := e.AssessEnsemble(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("ensemble assessment: %w", err)
		}
		result.Assessments = assessments
		result.Scores = scores
		result.Overall = e.scorer.Overall(assessments, scores)
	} else {
		result.Assessments = e.AssessNative(text)
		result.Overall = e.Synthesize(result.Assessments, ComputeStats(precedents))
	}

	e.log.Info("analyzed document",
		zap.String("doc_type", string(resolved)),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("cited_guidelines", len(result.Guidelines)),
		zap.String("recommendation", string(result.Overall.Recommendation)))

	return result, nil
}

func (e *Engine) resolveDocType(text string, docType DocType) DocType {
	switch docType {
	case DocTypeHearing, DocTypeAppeal:
		return docType
	default:
		if e.appeal.IsAppeal(text) {
			return DocTypeAppeal
		}
		return DocTypeHearing
	}
}
