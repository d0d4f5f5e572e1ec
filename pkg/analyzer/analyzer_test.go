package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/internal/config"
	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

func nativeConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{Mode: config.ModeNative},
	}
}

func ensembleConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{Mode: config.ModeEnsemble},
		Ensemble: config.EnsembleConfig{
			Weights: config.WeightsConfig{
				NGram:      0.30,
				TFIDF:      0.25,
				Semantic:   0.25,
				Contextual: 0.20,
			},
			Threshold: 0.35,
		},
	}
}

const hearingDecision = `
DEPARTMENT OF DEFENSE
DEFENSE OFFICE OF HEARINGS AND APPEALS

Date: January 15, 2020

STATEMENT OF THE CASE

The Statement of Reasons alleged security concerns under Guideline F
(Financial Considerations). Applicant accumulated delinquent debt of
$45,000 and filed for bankruptcy in 2019.

FINDINGS OF FACT

Applicant is 40 years old. The credit report lists collection accounts
and unpaid debt.

ANALYSIS

The financial concerns are not mitigated.

FORMAL FINDINGS

Paragraph 1, Guideline F: AGAINST APPLICANT
Subparagraphs 1.a-1.b: Against Applicant

CONCLUSION

In light of all of the circumstances, it is clearly consistent with the
national interest to deny Applicant eligibility for a security clearance.

DECISION

Eligibility for access to classified information is DENIED.

John Smith
Administrative Judge
`

const appealDecision = `
APPEAL BOARD DECISION

Applicant appealed the decision of the Administrative Judge. The Judge
denied Applicant's request for a security clearance under Guideline F.

ORDER

The decision is AFFIRMED.
`

func TestEngine_Analyze_HearingNative(t *testing.T) {
	e, err := New(context.Background(), nativeConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	result, err := e.Analyze(context.Background(), hearingDecision, DocTypeAuto)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.DocType != DocTypeHearing {
		t.Errorf("DocType = %s, want hearing", result.DocType)
	}
	if result.Outcome != sead4.OutcomeDenied {
		t.Errorf("Outcome = %s, want DENIED", result.Outcome)
	}

	foundF := false
	for _, code := range result.Guidelines {
		if code == "F" {
			foundF = true
		}
	}
	if !foundF {
		t.Errorf("Guidelines = %v, want to include F", result.Guidelines)
	}

	finding, ok := result.FormalFindings["F"]
	if !ok {
		t.Fatalf("FormalFindings missing guideline F")
	}
	if finding.Overall != sead4.FindingAgainst {
		t.Errorf("FormalFindings[F].Overall = %s, want AGAINST", finding.Overall)
	}

	if len(result.Assessments) != 13 {
		t.Errorf("len(Assessments) = %d, want 13", len(result.Assessments))
	}
	if result.Scores != nil {
		t.Errorf("Scores = %v, want nil in native mode", result.Scores)
	}
	if result.Overall.Recommendation == "" {
		t.Errorf("Overall.Recommendation is empty")
	}

	if result.Metadata.Date != "January 15, 2020" {
		t.Errorf("Metadata.Date = %q, want January 15, 2020", result.Metadata.Date)
	}
	if !strings.Contains(result.Metadata.Summary, "40 years old") {
		t.Errorf("Metadata.Summary = %q, want findings-of-fact content", result.Metadata.Summary)
	}
}

func TestEngine_Analyze_AppealAutoDetect(t *testing.T) {
	e, err := New(context.Background(), nativeConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	result, err := e.Analyze(context.Background(), appealDecision, DocTypeAuto)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.DocType != DocTypeAppeal {
		t.Errorf("DocType = %s, want appeal", result.DocType)
	}
	if result.Outcome != sead4.OutcomeDenied {
		t.Errorf("Outcome = %s, want DENIED", result.Outcome)
	}
	if result.FormalFindings != nil {
		t.Errorf("FormalFindings = %v, want nil for appeal decisions", result.FormalFindings)
	}
}

func TestEngine_Analyze_ForcedDocType(t *testing.T) {
	e, err := New(context.Background(), nativeConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	result, err := e.Analyze(context.Background(), appealDecision, DocTypeHearing)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.DocType != DocTypeHearing {
		t.Errorf("DocType = %s, want hearing when forced", result.DocType)
	}
}

func TestEngine_Analyze_Ensemble(t *testing.T) {
	e, err := New(context.Background(), ensembleConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	result, err := e.Analyze(context.Background(), hearingDecision, DocTypeAuto)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(result.Scores) != 13 {
		t.Errorf("len(Scores) = %d, want 13 in ensemble mode", len(result.Scores))
	}

	var f sead4.GuidelineAssessment
	for _, g := range result.Assessments {
		if g.Code == "F" {
			f = g
		}
	}
	if !f.Relevant {
		t.Errorf("guideline F not relevant, combined = %v", result.Scores["F"].Combined)
	}
}

func TestEngine_Analyze_EmptyDocument(t *testing.T) {
	e, err := New(context.Background(), nativeConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	_, err = e.Analyze(context.Background(), "   \n\t", DocTypeAuto)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Analyze() error = %v, want ErrEmptyDocument", err)
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(context.Background(), nil, nil)
	if !errors.Is(err, ErrNilConfig) {
		t.Errorf("New() error = %v, want ErrNilConfig", err)
	}
}

func TestEngine_Operations(t *testing.T) {
	e, err := New(context.Background(), nativeConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	t.Run("classify outcome", func(t *testing.T) {
		if got := e.ClassifyOutcome(hearingDecision, DocTypeAuto); got != sead4.OutcomeDenied {
			t.Errorf("ClassifyOutcome() = %s, want DENIED", got)
		}
		if got := e.ClassifyOutcome(appealDecision, DocTypeAuto); got != sead4.OutcomeDenied {
			t.Errorf("ClassifyOutcome(appeal) = %s, want DENIED", got)
		}
	})

	t.Run("extract guidelines", func(t *testing.T) {
		got := e.ExtractGuidelines(hearingDecision)
		if len(got) == 0 || got[0] != "F" {
			t.Errorf("ExtractGuidelines() = %v, want [F]", got)
		}
	})

	t.Run("extract formal findings", func(t *testing.T) {
		findings := e.ExtractFormalFindings(hearingDecision)
		if findings["F"].Overall != sead4.FindingAgainst {
			t.Errorf("ExtractFormalFindings()[F].Overall = %s, want AGAINST", findings["F"].Overall)
		}
	})

	t.Run("extract metadata", func(t *testing.T) {
		md := e.ExtractMetadata(hearingDecision)
		if md.Date != "January 15, 2020" {
			t.Errorf("Date = %q, want January 15, 2020", md.Date)
		}
	})

	t.Run("assess native", func(t *testing.T) {
		if got := e.AssessNative(hearingDecision); len(got) != 13 {
			t.Errorf("len(AssessNative()) = %d, want 13", len(got))
		}
	})

	t.Run("ensemble disabled in native mode", func(t *testing.T) {
		_, _, err := e.AssessEnsemble(context.Background(), hearingDecision)
		if !errors.Is(err, ErrEnsembleDisabled) {
			t.Errorf("AssessEnsemble() error = %v, want ErrEnsembleDisabled", err)
		}
	})

	t.Run("synthesize with precomputed stats", func(t *testing.T) {
		assessments := e.AssessNative(hearingDecision)
		stats := &sead4.PrecedentStats{
			Total:            10,
			DeniedPercentage: 0.8,
			AvgRelevance:     0.75,
		}
		got := e.Synthesize(assessments, stats)
		if got.Recommendation != sead4.RecommendUnfavorable {
			t.Errorf("Recommendation = %s, want UNFAVORABLE", got.Recommendation)
		}
		if !strings.Contains(got.Summary, "80% denial rate") {
			t.Errorf("Summary = %q, want precedent denial rate", got.Summary)
		}
	})
}

func TestEngine_AssessEnsemble(t *testing.T) {
	e, err := New(context.Background(), ensembleConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	assessments, scores, err := e.AssessEnsemble(context.Background(), hearingDecision)
	if err != nil {
		t.Fatalf("AssessEnsemble() error = %v", err)
	}
	if len(assessments) != 13 || len(scores) != 13 {
		t.Errorf("got %d assessments, %d scores, want 13 each", len(assessments), len(scores))
	}
}

func TestComputeStats(t *testing.T) {
	if got := ComputeStats(nil); got != nil {
		t.Errorf("ComputeStats(nil) = %v, want nil", got)
	}

	stats := ComputeStats([]sead4.Precedent{
		{Outcome: sead4.OutcomeDenied, RelevanceScore: 0.8},
		{Outcome: sead4.OutcomeGranted, RelevanceScore: 0.6},
	})
	if stats == nil {
		t.Fatal("ComputeStats() = nil, want stats")
	}
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2", stats.Total)
	}
	if stats.DeniedPercentage != 0.5 {
		t.Errorf("DeniedPercentage = %v, want 0.5", stats.DeniedPercentage)
	}
}

func TestCaseInfo(t *testing.T) {
	num, year := CaseInfo("/cases/20-01234.txt")
	if num != "20-01234" || year != 2020 {
		t.Errorf("CaseInfo() = %q, %d, want 20-01234, 2020", num, year)
	}

	num, year = CaseInfo("-")
	if num != "" || year != 0 {
		t.Errorf("CaseInfo(-) = %q, %d, want empty", num, year)
	}
}

func TestEngine_AnalyzeWithPrecedents(t *testing.T) {
	e, err := New(context.Background(), nativeConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer e.Close()

	precedents := []sead4.Precedent{
		{CaseNumber: "20-01234", Outcome: sead4.OutcomeDenied, RelevanceScore: 0.8},
		{CaseNumber: "19-05678", Outcome: sead4.OutcomeDenied, RelevanceScore: 0.7},
		{CaseNumber: "21-00011", Outcome: sead4.OutcomeDenied, RelevanceScore: 0.7},
		{CaseNumber: "21-00012", Outcome: sead4.OutcomeGranted, RelevanceScore: 0.6},
	}

	result, err := e.AnalyzeWithPrecedents(context.Background(), hearingDecision, DocTypeAuto, precedents)
	if err != nil {
		t.Fatalf("AnalyzeWithPrecedents() error = %v", err)
	}
	// 75% of precedents are denials, which the summary cites.
	if !strings.Contains(result.Overall.Summary, "75% denial rate") {
		t.Errorf("Overall.Summary = %q, want precedent denial rate", result.Overall.Summary)
	}
}
