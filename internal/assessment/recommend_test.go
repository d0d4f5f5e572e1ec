package assessment

import (
	"strings"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

func relevantAssessment(code sead4.GuidelineCode, severity sead4.Severity, confidence float64, disqualifiers int) sead4.GuidelineAssessment {
	g := sead4.GuidelineAssessment{
		Code:       code,
		Name:       sead4.Guidelines[code].Name,
		Relevant:   true,
		Severity:   severity,
		Confidence: confidence,
	}
	for i := 0; i < disqualifiers; i++ {
		g.Disqualifiers = append(g.Disqualifiers, sead4.DisqualifierFinding{Code: "AG ¶ 19(a)", Confidence: confidence})
	}
	return g
}

func nonRelevantAssessments() []sead4.GuidelineAssessment {
	var out []sead4.GuidelineAssessment
	for _, code := range sead4.Codes() {
		out = append(out, sead4.GuidelineAssessment{Code: code, Name: sead4.Guidelines[code].Name, Relevant: false, Confidence: 0.8})
	}
	return out
}

func TestSynthesizer_NoRelevantGuidelines(t *testing.T) {
	s := NewSynthesizer()

	got := s.Synthesize(nonRelevantAssessments(), nil)

	if got.Recommendation != sead4.RecommendInsufficientInfo {
		t.Errorf("Recommendation = %s, want INSUFFICIENT_INFO", got.Recommendation)
	}
	if got.Confidence != 0.35 {
		t.Errorf("Confidence = %v, want 0.35", got.Confidence)
	}
	if len(got.KeyConcerns) != 0 {
		t.Errorf("KeyConcerns = %v, want empty", got.KeyConcerns)
	}
}

func TestSynthesizer_SevereConcerns(t *testing.T) {
	s := NewSynthesizer()

	assessments := []sead4.GuidelineAssessment{
		relevantAssessment("F", sead4.SeveritySevere, 0.8, 2),
	}

	got := s.Synthesize(assessments, nil)
	if got.Recommendation != sead4.RecommendUnfavorable {
		t.Errorf("Recommendation = %s, want UNFAVORABLE", got.Recommendation)
	}
	if !strings.Contains(got.Summary, "1 severe concern area(s)") {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.KeyConcerns) != 1 || !strings.Contains(got.KeyConcerns[0], "Financial Considerations: 2 disqualifying condition(s)") {
		t.Errorf("KeyConcerns = %v", got.KeyConcerns)
	}
}

func TestSynthesizer_MultipleModerateWithFavorablePrecedents(t *testing.T) {
	s := NewSynthesizer()

	assessments := []sead4.GuidelineAssessment{
		relevantAssessment("E", sead4.SeverityModerate, 0.6, 1),
		relevantAssessment("F", sead4.SeverityModerate, 0.6, 1),
		relevantAssessment("G", sead4.SeverityModerate, 0.6, 1),
	}
	stats := &sead4.PrecedentStats{Total: 10, GrantedPercentage: 0.7, DeniedPercentage: 0.3}

	got := s.Synthesize(assessments, stats)
	if got.Recommendation != sead4.RecommendConditional {
		t.Errorf("Recommendation = %s, want CONDITIONAL", got.Recommendation)
	}
	if !strings.Contains(got.Summary, "70% approval rate") {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestSynthesizer_MultipleModerateWithoutPrecedents(t *testing.T) {
	s := NewSynthesizer()

	assessments := []sead4.GuidelineAssessment{
		relevantAssessment("E", sead4.SeverityModerate, 0.6, 1),
		relevantAssessment("F", sead4.SeverityModerate, 0.6, 1),
		relevantAssessment("G", sead4.SeverityModerate, 0.6, 1),
	}

	got := s.Synthesize(assessments, nil)
	if got.Recommendation != sead4.RecommendUnfavorable {
		t.Errorf("Recommendation = %s, want UNFAVORABLE", got.Recommendation)
	}
}

func TestSynthesizer_FewConcernsConditional(t *testing.T) {
	s := NewSynthesizer()

	assessments := []sead4.GuidelineAssessment{
		relevantAssessment("F", sead4.SeverityModerate, 0.6, 1),
	}

	got := s.Synthesize(assessments, nil)
	if got.Recommendation != sead4.RecommendConditional {
		t.Errorf("Recommendation = %s, want CONDITIONAL", got.Recommendation)
	}
}

func TestSynthesizer_ConfidenceBounds(t *testing.T) {
	s := NewSynthesizer()

	// High guideline confidence plus all boosts must still clip at 0.92.
	assessments := []sead4.GuidelineAssessment{
		relevantAssessment("F", sead4.SeveritySevere, 0.95, 3),
		relevantAssessment("J", sead4.SeveritySevere, 0.95, 3),
		relevantAssessment("H", sead4.SeveritySevere, 0.95, 3),
		relevantAssessment("G", sead4.SeveritySevere, 0.95, 3),
	}
	stats := &sead4.PrecedentStats{Total: 10, DeniedPercentage: 0.9}

	got := s.Synthesize(assessments, stats)
	if got.Confidence > 0.92 {
		t.Errorf("Confidence = %v, want <= 0.92", got.Confidence)
	}
	if got.Confidence < 0.35 {
		t.Errorf("Confidence = %v, want >= 0.35", got.Confidence)
	}
}

func TestSynthesizer_PrecedentDenialBoost(t *testing.T) {
	s := NewSynthesizer()

	assessments := []sead4.GuidelineAssessment{
		relevantAssessment("F", sead4.SeverityModerate, 0.6, 1),
	}

	without := s.Synthesize(assessments, nil)
	with := s.Synthesize(assessments, &sead4.PrecedentStats{Total: 5, DeniedPercentage: 0.8})

	if with.Confidence-without.Confidence < 0.09 {
		t.Errorf("denial boost = %v, want ~0.10", with.Confidence-without.Confidence)
	}
}
