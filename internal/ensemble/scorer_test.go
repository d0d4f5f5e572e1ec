package ensemble

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// stubEmbedder returns a constant unit vector for every input, making every
// semantic similarity 1.
type stubEmbedder struct{}

func (stubEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func (stubEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func (stubEmbedder) Dimension() int { return 3 }
func (stubEmbedder) Close() error   { return nil }

func TestScorer_Assess_AlwaysThirteen(t *testing.T) {
	s, err := NewScorer(context.Background(), DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	assessments, scores, err := s.Assess(context.Background(), "Routine correspondence with no security content.")
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if len(assessments) != 13 {
		t.Fatalf("len(assessments) = %d, want 13", len(assessments))
	}
	if len(scores) != 13 {
		t.Fatalf("len(scores) = %d, want 13", len(scores))
	}
	for i, code := range sead4.Codes() {
		if assessments[i].Code != code {
			t.Errorf("assessments[%d].Code = %s, want %s", i, assessments[i].Code, code)
		}
	}
}

func TestScorer_EffectiveWeights_SumToOne(t *testing.T) {
	tests := []struct {
		name     string
		embedder stubEmbedder
		semantic bool
	}{
		{name: "without semantic"},
		{name: "with semantic", semantic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scorer{cfg: DefaultConfig()}
			if tt.semantic {
				s.semantic = &semanticIndex{}
			}
			w := s.effectiveWeights()
			sum := w.NGram + w.TFIDF + w.Semantic + w.Contextual
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("weights sum = %v, want 1.0", sum)
			}
			if !tt.semantic && w.Semantic != 0 {
				t.Errorf("Semantic weight = %v, want 0 without embedder", w.Semantic)
			}
		})
	}
}

func TestScorer_Assess_FinancialDocument(t *testing.T) {
	s, err := NewScorer(context.Background(), DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	text := "Applicant has a history of financial problems. The credit report lists delinquent debt, " +
		"collection account entries, and unpaid debt totaling $45,000. Applicant filed for bankruptcy " +
		"in 2019 after the foreclosure proceedings. The delinquent accounts remain unresolved."

	assessments, scores, err := s.Assess(context.Background(), text)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	var f sead4.GuidelineAssessment
	for _, g := range assessments {
		if g.Code == "F" {
			f = g
		}
	}

	if !f.Relevant {
		t.Fatalf("guideline F not relevant, combined = %v", scores["F"].Combined)
	}
	// Bankruptcy is a severe signal for F.
	if f.Severity != sead4.SeveritySevere {
		t.Errorf("Severity = %s, want %s", f.Severity, sead4.SeveritySevere)
	}
	if len(f.Mitigators) != 2 {
		t.Errorf("len(Mitigators) = %d, want 2", len(f.Mitigators))
	}
	for _, m := range f.Mitigators {
		if m.Applicability != sead4.MitigatorPartial {
			t.Errorf("Applicability = %s, want PARTIAL", m.Applicability)
		}
	}
}

func TestScorer_Assess_ScoreAndConfidenceBounds(t *testing.T) {
	s, err := NewScorer(context.Background(), DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	text := strings.Repeat("Applicant filed for bankruptcy with delinquent debt in collection. ", 20)
	_, scores, err := s.Assess(context.Background(), text)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	for code, sc := range scores {
		if sc.Combined < 0 || sc.Combined > 1 {
			t.Errorf("guideline %s: Combined = %v, outside [0, 1]", code, sc.Combined)
		}
		if sc.Confidence < 0.6 || sc.Confidence > 0.95 {
			t.Errorf("guideline %s: Confidence = %v, outside [0.6, 0.95]", code, sc.Confidence)
		}
	}
}

func TestScorer_Assess_NonRelevantReasoning(t *testing.T) {
	s, err := NewScorer(context.Background(), DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	assessments, _, err := s.Assess(context.Background(), "Unrelated text.")
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	for _, g := range assessments {
		if g.Relevant {
			continue
		}
		if g.Confidence != 0.9 {
			t.Errorf("guideline %s: Confidence = %v, want 0.9", g.Code, g.Confidence)
		}
		if !strings.Contains(g.Reasoning, "threshold: 0.35") {
			t.Errorf("guideline %s: Reasoning = %q, want threshold mention", g.Code, g.Reasoning)
		}
	}
}

func TestScorer_WithStubEmbedder(t *testing.T) {
	s, err := NewScorer(context.Background(), DefaultConfig(), stubEmbedder{}, nil)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	_, scores, err := s.Assess(context.Background(), "Applicant has delinquent debt.")
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	// Constant embeddings make every semantic similarity 1.
	for code, sc := range scores {
		if math.Abs(sc.Semantic-1.0) > 1e-6 {
			t.Errorf("guideline %s: Semantic = %v, want 1.0", code, sc.Semantic)
		}
	}
}

func TestScorer_Overall(t *testing.T) {
	s, err := NewScorer(context.Background(), DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}

	t.Run("no relevant guidelines", func(t *testing.T) {
		assessments, scores, err := s.Assess(context.Background(), "Nothing of note.")
		if err != nil {
			t.Fatalf("Assess() error = %v", err)
		}
		got := s.Overall(assessments, scores)
		if got.Recommendation != sead4.RecommendInsufficientInfo {
			t.Errorf("Recommendation = %s, want INSUFFICIENT_INFO", got.Recommendation)
		}
		if got.Confidence != 0.5 {
			t.Errorf("Confidence = %v, want 0.5", got.Confidence)
		}
	})

	t.Run("severe concern is unfavorable", func(t *testing.T) {
		text := "Applicant filed for bankruptcy. The credit report lists delinquent debt and collection account entries totaling unpaid debt."
		assessments, scores, err := s.Assess(context.Background(), text)
		if err != nil {
			t.Fatalf("Assess() error = %v", err)
		}
		got := s.Overall(assessments, scores)
		if got.Recommendation != sead4.RecommendUnfavorable {
			t.Errorf("Recommendation = %s, want UNFAVORABLE", got.Recommendation)
		}
	})
}
