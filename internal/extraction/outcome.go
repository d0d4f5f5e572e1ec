package extraction

import (
	"regexp"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// outcomeTailWindow is how far from the end of a decision the dispositive
// paragraph is searched for. The formal conclusion is always near the end.
const outcomeTailWindow = 3000

// OutcomeClassifier determines the disposition of a hearing decision from
// its closing text. Thread-safe: all patterns are compiled at construction.
type OutcomeClassifier struct {
	patterns map[sead4.Outcome][]*regexp.Regexp
}

// NewOutcomeClassifier creates a classifier with the built-in pattern tables.
func NewOutcomeClassifier() *OutcomeClassifier {
	patterns := make(map[sead4.Outcome][]*regexp.Regexp, len(outcomePatternSources))
	for outcome, sources := range outcomePatternSources {
		patterns[outcome] = compilePatterns(sources)
	}
	return &OutcomeClassifier{patterns: patterns}
}

// Classify scans the tail of the document and returns the outcome whose
// pattern matches rightmost. Decisions sometimes restate a prior outcome
// earlier in the tail (quoting the standard being applied) before stating
// the actual disposition last, so the rightmost match wins. Returns
// OutcomeUnknown when nothing matches.
func (c *OutcomeClassifier) Classify(text string) sead4.Outcome {
	tail := text
	if len(tail) > outcomeTailWindow {
		tail = tail[len(tail)-outcomeTailWindow:]
	}

	best := sead4.OutcomeUnknown
	bestEnd := -1

	for _, outcome := range []sead4.Outcome{
		sead4.OutcomeGranted,
		sead4.OutcomeDenied,
		sead4.OutcomeRevoked,
		sead4.OutcomeRemanded,
	} {
		if end := rightmostMatchEnd(c.patterns[outcome], tail); end > bestEnd {
			best = outcome
			bestEnd = end
		}
	}

	return best
}

// rightmostMatchEnd returns the largest match end offset across all patterns,
// or -1 if no pattern matches.
func rightmostMatchEnd(patterns []*regexp.Regexp, text string) int {
	end := -1
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if loc[1] > end {
				end = loc[1]
			}
		}
	}
	return end
}
