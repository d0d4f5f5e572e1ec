package extraction

import (
	"regexp"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// GuidelineExtractor flags which of the 13 guideline codes are textually
// present in a document. Binary presence only, no confidence.
type GuidelineExtractor struct {
	patterns map[sead4.GuidelineCode]*regexp.Regexp
}

// NewGuidelineExtractor creates an extractor with the built-in disjunctive
// patterns (formal "Guideline X" phrasing, common name, AG citation range).
func NewGuidelineExtractor() *GuidelineExtractor {
	patterns := make(map[sead4.GuidelineCode]*regexp.Regexp, len(guidelinePatternSources))
	for code, src := range guidelinePatternSources {
		patterns[code] = regexp.MustCompile(`(?i)` + src)
	}
	return &GuidelineExtractor{patterns: patterns}
}

// Extract returns the codes with at least one match, in fixed A-M order.
func (e *GuidelineExtractor) Extract(text string) []sead4.GuidelineCode {
	var found []sead4.GuidelineCode
	for _, code := range sead4.Codes() {
		if e.patterns[code].MatchString(text) {
			found = append(found, code)
		}
	}
	return found
}
