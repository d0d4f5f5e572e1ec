// Package assessment turns raw decision or report text into per-guideline
// assessments and an overall recommendation using keyword matching, severity
// patterns, and precedent statistics. No model calls are made here; this is
// the rule-based path.
package assessment

import (
	"regexp"
	"strings"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// guidelineKeywords drive relevance detection. A document mentioning any of a
// guideline's keywords flags that guideline for full assessment.
var guidelineKeywords = map[sead4.GuidelineCode][]string{
	"A": {"allegiance", "treason", "espionage", "sabotage", "terrorism", "sedition", "overthrow"},
	"B": {"foreign", "foreign contact", "foreign national", "dual citizenship", "foreign property", "foreign business"},
	"C": {"foreign preference", "foreign passport", "foreign voting", "foreign military"},
	"D": {"sexual behavior", "sexual conduct", "pornography", "sexual misconduct"},
	"E": {"personal conduct", "dishonest", "untrustworthy", "rule violation", "misconduct"},
	"F": {"financial", "debt", "bankruptcy", "foreclosure", "delinquent", "credit", "financial problem"},
	"G": {"alcohol", "drinking", "dui", "dwi", "intoxication", "alcohol abuse"},
	"H": {"drug", "marijuana", "cocaine", "heroin", "illegal substance", "prescription abuse", "controlled substance"},
	"I": {"psychological", "mental health", "psychiatric", "counseling", "therapy", "diagnosis"},
	"J": {"criminal", "arrest", "conviction", "felony", "misdemeanor", "charge", "probation"},
	"K": {"handling protected information", "classified", "security violation", "spillage"},
	"L": {"outside activities", "conflict of interest", "outside employment"},
	"M": {"use of information technology", "cyber", "unauthorized access", "computer"},
}

// severePatterns escalate a guideline straight to severity D when matched.
var severePatterns = map[sead4.GuidelineCode][]*regexp.Regexp{
	"F": compileSeverity(`\$\s*\d{6,}`, `bankruptcy`, `foreclosure`),
	"G": compileSeverity(`multiple\s+dui`, `dui.*dui`, `alcohol.*treatment`, `rehabilitation`),
	"H": compileSeverity(`cocaine|heroin|methamphetamine`, `drug.*sale|sell.*drug`, `trafficking`),
	"J": compileSeverity(`felony`, `prison`, `incarceration`),
}

func compileSeverity(sources ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		compiled = append(compiled, regexp.MustCompile(src))
	}
	return compiled
}

// stopWords are dropped when reducing condition text to keywords.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "been": true, "be": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "that": true, "this": true, "it": true,
	"if": true, "not": true,
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// extractKeywords reduces condition text to its significant terms: lowercased
// words longer than three characters that are not stop words.
func extractKeywords(text string) []string {
	var keywords []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(w) > 3 && !stopWords[w] {
			keywords = append(keywords, w)
		}
	}
	return keywords
}
