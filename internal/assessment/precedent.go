package assessment

import (
	"sort"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// ComputeStats aggregates outcome proportions over retrieved precedents.
// REVOKED counts toward the denied percentage. A zero relevance score is
// treated as unknown and defaults to 0.5. Returns nil for an empty slice.
func ComputeStats(precedents []sead4.Precedent) *sead4.PrecedentStats {
	if len(precedents) == 0 {
		return nil
	}

	total := len(precedents)
	outcomeCounts := make(map[sead4.Outcome]int)
	guidelineCounts := make(map[sead4.GuidelineCode]int)
	relevanceSum := 0.0

	for _, p := range precedents {
		outcomeCounts[p.Outcome]++
		for _, g := range p.Guidelines {
			guidelineCounts[g]++
		}
		score := p.RelevanceScore
		if score == 0 {
			score = 0.5
		}
		relevanceSum += score
	}

	return &sead4.PrecedentStats{
		Total:             total,
		DeniedPercentage:  float64(outcomeCounts[sead4.OutcomeDenied]+outcomeCounts[sead4.OutcomeRevoked]) / float64(total),
		GrantedPercentage: float64(outcomeCounts[sead4.OutcomeGranted]) / float64(total),
		MostCommonOutcome: mostCommonOutcome(precedents, outcomeCounts),
		CommonGuidelines:  topGuidelines(guidelineCounts, 3),
		AvgRelevance:      relevanceSum / float64(total),
	}
}

// mostCommonOutcome returns the highest-count outcome, ties broken by first
// appearance in the precedent list.
func mostCommonOutcome(precedents []sead4.Precedent, counts map[sead4.Outcome]int) sead4.Outcome {
	best := sead4.OutcomeUnknown
	bestCount := 0
	seen := make(map[sead4.Outcome]bool)
	for _, p := range precedents {
		if seen[p.Outcome] {
			continue
		}
		seen[p.Outcome] = true
		if counts[p.Outcome] > bestCount {
			best = p.Outcome
			bestCount = counts[p.Outcome]
		}
	}
	return best
}

// topGuidelines returns the n most frequent guidelines, count descending,
// ties broken by code order.
func topGuidelines(counts map[sead4.GuidelineCode]int, n int) []sead4.GuidelineFrequency {
	freq := make([]sead4.GuidelineFrequency, 0, len(counts))
	for code, count := range counts {
		freq = append(freq, sead4.GuidelineFrequency{Code: code, Count: count})
	}
	sort.Slice(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return freq[i].Code < freq[j].Code
	})
	if len(freq) > n {
		freq = freq[:n]
	}
	return freq
}
