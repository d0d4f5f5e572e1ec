package assessment

import (
	"fmt"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// Synthesizer aggregates per-guideline assessments and optional precedent
// statistics into an overall recommendation.
type Synthesizer struct{}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize applies the ordered decision table: no relevant guidelines,
// then severe concerns, then three-or-more relevant guidelines, then the
// few-concerns default. stats may be nil when no precedents were retrieved.
func (s *Synthesizer) Synthesize(assessments []sead4.GuidelineAssessment, stats *sead4.PrecedentStats) sead4.OverallAssessment {
	var relevant, severe []sead4.GuidelineAssessment
	for _, g := range assessments {
		if !g.Relevant {
			continue
		}
		relevant = append(relevant, g)
		if g.Severity == sead4.SeveritySerious || g.Severity == sead4.SeveritySevere {
			severe = append(severe, g)
		}
	}

	concerns, mitigations := collectHighlights(relevant)
	confidence := overallConfidence(relevant, len(severe), stats)

	var recommendation sead4.Recommendation
	var summary string

	switch {
	case len(relevant) == 0:
		recommendation = sead4.RecommendInsufficientInfo
		summary = "Native analysis using keyword matching found no clear security concerns. Limited information available for comprehensive assessment."

	case len(severe) > 0:
		recommendation = sead4.RecommendUnfavorable
		if stats != nil && stats.DeniedPercentage > 0.7 {
			summary = fmt.Sprintf("Analysis identified %d severe concern area(s). Similar precedents show %.0f%% denial rate. Significant security concerns identified through pattern matching.", len(severe), stats.DeniedPercentage*100)
		} else {
			summary = fmt.Sprintf("Analysis identified %d severe concern area(s) based on keyword and pattern matching. Further investigation recommended.", len(severe))
		}

	case len(relevant) >= 3:
		if stats != nil && stats.GrantedPercentage > 0.6 {
			recommendation = sead4.RecommendConditional
			summary = fmt.Sprintf("Multiple security concern areas identified (%d guidelines). Similar cases show %.0f%% approval rate with mitigation. Conditional recommendation pending mitigation verification.", len(relevant), stats.GrantedPercentage*100)
		} else {
			recommendation = sead4.RecommendUnfavorable
			if stats != nil {
				summary = fmt.Sprintf("Multiple security concerns across %d guideline areas. Similar precedents suggest unfavorable outcomes without strong mitigation.", len(relevant))
			} else {
				summary = fmt.Sprintf("Pattern analysis identified concerns in %d guideline areas. Conditional recommendation pending further review.", len(relevant))
			}
		}

	default:
		recommendation = sead4.RecommendConditional
		if len(mitigations) > 0 {
			if stats != nil && stats.GrantedPercentage > 0.5 {
				summary = fmt.Sprintf("Limited security concerns identified with potential mitigating factors. Similar cases show %.0f%% approval rate.", stats.GrantedPercentage*100)
			} else {
				summary = "Security concerns identified but potential mitigating factors present. Conditional recommendation pending verification of mitigation."
			}
		} else {
			summary = fmt.Sprintf("Security concerns identified in %d area(s). Native analysis suggests conditional recommendation pending detailed review.", len(relevant))
		}
	}

	return sead4.OverallAssessment{
		Recommendation: recommendation,
		Confidence:     confidence,
		Summary:        summary,
		KeyConcerns:    capList(concerns, 5),
		KeyMitigations: capList(mitigations, 5),
	}
}

// collectHighlights renders the concern and mitigation lines per relevant
// guideline. Only FULL and PARTIAL mitigators count as applicable.
func collectHighlights(relevant []sead4.GuidelineAssessment) (concerns, mitigations []string) {
	for _, g := range relevant {
		if len(g.Disqualifiers) > 0 {
			concerns = append(concerns, fmt.Sprintf("%s: %d disqualifying condition(s) identified", g.Name, len(g.Disqualifiers)))
		}
		applicable := 0
		for _, m := range g.Mitigators {
			if m.Applicability == sead4.MitigatorFull || m.Applicability == sead4.MitigatorPartial {
				applicable++
			}
		}
		if applicable > 0 {
			mitigations = append(mitigations, fmt.Sprintf("%s: %d potentially applicable mitigating condition(s)", g.Name, applicable))
		}
	}
	return concerns, mitigations
}

// overallConfidence combines the mean relevant-guideline confidence with a
// severity boost and a precedent-alignment boost, clipped to [0.35, 0.92].
func overallConfidence(relevant []sead4.GuidelineAssessment, severeCount int, stats *sead4.PrecedentStats) float64 {
	if len(relevant) == 0 {
		return 0.35
	}

	sum := 0.0
	for _, g := range relevant {
		sum += g.Confidence
	}
	base := sum / float64(len(relevant))

	severityBoost := min(0.15, float64(severeCount)*0.05)

	precedentBoost := 0.0
	if stats != nil {
		if stats.DeniedPercentage > 0.7 {
			precedentBoost = 0.10
		} else if stats.AvgRelevance > 0.7 {
			precedentBoost = 0.05
		}
	}

	return min(0.92, max(0.35, base+severityBoost+precedentBoost))
}

func capList(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
