package assessment

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// NativeClassifier assesses guideline relevance and severity by keyword
// frequency and pattern matching. Deterministic: the same text always yields
// the same assessments.
type NativeClassifier struct {
	log *zap.Logger
	// quick skips disqualifier and mitigator matching, producing
	// relevance-only assessments.
	quick bool
}

// NativeOption configures a NativeClassifier.
type NativeOption func(*NativeClassifier)

// WithQuickMode limits assessment to relevance and severity.
func WithQuickMode() NativeOption {
	return func(c *NativeClassifier) { c.quick = true }
}

// NewNativeClassifier creates a classifier. A nil logger disables logging.
func NewNativeClassifier(log *zap.Logger, opts ...NativeOption) *NativeClassifier {
	if log == nil {
		log = zap.NewNop()
	}
	c := &NativeClassifier{log: log.Named("native")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assess produces exactly one assessment per guideline code, in A-M order.
// Guidelines without keyword hits come back non-relevant with fixed
// confidence 0.8.
func (c *NativeClassifier) Assess(text string) []sead4.GuidelineAssessment {
	docLower := strings.ToLower(text)
	relevance := c.identify(docLower)

	assessments := make([]sead4.GuidelineAssessment, 0, len(sead4.Codes()))
	for _, code := range sead4.Codes() {
		if _, ok := relevance[code]; ok {
			assessments = append(assessments, c.assessGuideline(code, docLower))
		} else {
			assessments = append(assessments, sead4.GuidelineAssessment{
				Code:          code,
				Name:          sead4.Guidelines[code].Name,
				Relevant:      false,
				Disqualifiers: []sead4.DisqualifierFinding{},
				Mitigators:    []sead4.MitigatorFinding{},
				Reasoning:     "No relevant indicators found in document",
				Confidence:    0.8,
			})
		}
	}
	return assessments
}

// identify returns the guidelines with at least one keyword occurrence,
// mapped to a frequency-based relevance confidence.
func (c *NativeClassifier) identify(docLower string) map[sead4.GuidelineCode]float64 {
	relevant := make(map[sead4.GuidelineCode]float64)

	for code, keywords := range guidelineKeywords {
		matches := 0
		for _, kw := range keywords {
			matches += strings.Count(docLower, kw)
		}
		if matches == 0 {
			continue
		}
		confidence := min(0.5+float64(matches)*0.1, 0.95)
		relevant[code] = confidence
		c.log.Debug("guideline flagged",
			zap.String("code", string(code)),
			zap.Int("matches", matches),
			zap.Float64("confidence", confidence))
	}

	return relevant
}

// assessGuideline runs the full rule-based assessment for one flagged
// guideline: disqualifier matching over the top three conditions, mitigator
// matching over the top two (only when disqualifiers exist), severity, and a
// mathematically derived confidence.
func (c *NativeClassifier) assessGuideline(code sead4.GuidelineCode, docLower string) sead4.GuidelineAssessment {
	info := sead4.Guidelines[code]

	disqualifiers := []sead4.DisqualifierFinding{}
	if !c.quick {
		for _, disq := range top(info.Disqualifiers, 3) {
			matches := countKeywordHits(disq.Text, docLower)
			if matches < 2 {
				continue
			}
			disqualifiers = append(disqualifiers, sead4.DisqualifierFinding{
				Code:       disq.Code,
				Text:       disq.Text,
				Evidence:   fmt.Sprintf("Pattern-based match: %d keywords found", matches),
				Confidence: min(0.4+float64(matches)*0.15, 0.9),
			})
		}
	}

	mitigators := []sead4.MitigatorFinding{}
	if !c.quick && len(disqualifiers) > 0 {
		for _, mitg := range top(info.Mitigators, 2) {
			matches := countKeywordHits(mitg.Text, docLower)
			if matches < 1 {
				continue
			}
			applicability := sead4.MitigatorMinimal
			if matches >= 2 {
				applicability = sead4.MitigatorPartial
			}
			mitigators = append(mitigators, sead4.MitigatorFinding{
				Code:          mitg.Code,
				Text:          mitg.Text,
				Applicability: applicability,
				Reasoning:     fmt.Sprintf("Pattern-based analysis suggests potential applicability (keyword matches: %d)", matches),
			})
		}
	}

	severity := assessSeverity(code, docLower, len(disqualifiers))

	return sead4.GuidelineAssessment{
		Code:          code,
		Name:          info.Name,
		Relevant:      true,
		Severity:      severity,
		Disqualifiers: disqualifiers,
		Mitigators:    mitigators,
		Reasoning:     guidelineReasoning(code, info.Name, len(disqualifiers), len(mitigators), severity),
		Confidence:    guidelineConfidence(disqualifiers, mitigators, severity),
	}
}

// countKeywordHits counts how many of the condition text's keywords appear in
// the document.
func countKeywordHits(conditionText, docLower string) int {
	matches := 0
	for _, kw := range extractKeywords(conditionText) {
		if strings.Contains(docLower, kw) {
			matches++
		}
	}
	return matches
}

// assessSeverity grades a guideline: a severe pattern hit escalates to D,
// otherwise the disqualifier count sets the level.
func assessSeverity(code sead4.GuidelineCode, docLower string, numDisqualifiers int) sead4.Severity {
	for _, re := range severePatterns[code] {
		if re.MatchString(docLower) {
			return sead4.SeveritySevere
		}
	}
	switch {
	case numDisqualifiers >= 3:
		return sead4.SeveritySerious
	case numDisqualifiers >= 1:
		return sead4.SeverityModerate
	default:
		return sead4.SeverityMinor
	}
}

// guidelineConfidence derives confidence from evidence strength: the mean
// disqualifier confidence plus a severity boost, reduced slightly when
// mitigators introduce ambiguity.
func guidelineConfidence(disqualifiers []sead4.DisqualifierFinding, mitigators []sead4.MitigatorFinding, severity sead4.Severity) float64 {
	confidence := 0.45
	if len(disqualifiers) > 0 {
		sum := 0.0
		for _, d := range disqualifiers {
			sum += d.Confidence
		}
		boost := map[sead4.Severity]float64{
			sead4.SeveritySevere:   0.15,
			sead4.SeveritySerious:  0.10,
			sead4.SeverityModerate: 0.05,
		}[severity]
		confidence = min(0.95, sum/float64(len(disqualifiers))+boost)
	}
	if len(mitigators) > 0 {
		confidence = max(0.4, confidence-0.05)
	}
	return confidence
}

// guidelineReasoning renders the template-based explanation.
func guidelineReasoning(code sead4.GuidelineCode, name string, numDisqualifiers, numMitigators int, severity sead4.Severity) string {
	parts := []string{fmt.Sprintf("Guideline %s (%s) appears relevant based on keyword analysis.", code, name)}

	if numDisqualifiers > 0 {
		parts = append(parts, fmt.Sprintf("Identified %d potential disqualifying condition(s).", numDisqualifiers))
	} else {
		parts = append(parts, "No specific disqualifying conditions identified through pattern matching.")
	}

	if numMitigators > 0 {
		parts = append(parts, fmt.Sprintf("Found %d potentially applicable mitigating condition(s).", numMitigators))
	}

	desc := map[sead4.Severity]string{
		sead4.SeverityMinor:    "minor or mitigated concerns",
		sead4.SeverityModerate: "moderate concerns",
		sead4.SeveritySerious:  "serious concerns",
		sead4.SeveritySevere:   "severe security concerns",
	}[severity]
	if desc != "" {
		parts = append(parts, fmt.Sprintf("Assessed severity: %s.", desc))
	}

	return strings.Join(parts, " ")
}

// top returns the first n conditions, fewer when the list is shorter.
func top(conditions []sead4.Condition, n int) []sead4.Condition {
	if len(conditions) < n {
		return conditions
	}
	return conditions[:n]
}
