package extraction

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const (
	// metadataDateWindow bounds the date search to the document header.
	metadataDateWindow = 2000
	// metadataJudgeWindow bounds the judge-name search.
	metadataJudgeWindow = 3000
	// summaryMaxLen caps the extracted summary.
	summaryMaxLen = 1500
)

// MetadataExtractor pulls case metadata out of decision text: decision date,
// administrative judge, a prose summary, SOR allegations, and mitigating
// factors mentioned in the analysis.
type MetadataExtractor struct {
	datePatterns  []*regexp.Regexp
	judgePatterns []*regexp.Regexp
	sections      []sectionBound
	sorSection    *regexp.Regexp
	sorAllegation *regexp.Regexp
	mitPatterns   []*regexp.Regexp
	whitespace    *regexp.Regexp
}

// sectionBound is a summary source section with the headers that end it.
type sectionBound struct {
	start *regexp.Regexp
	end   *regexp.Regexp
}

// NewMetadataExtractor creates an extractor with the built-in patterns.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:Date|Dated)[:\s]+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
			regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
			regexp.MustCompile(`(?i)([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		},
		judgePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:Administrative\s+Judge|AJ)[:\s]+([A-Z][a-z]+\s+[A-Z]\.?\s*[A-Z][a-z]+)`),
			regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z]\.?\s*[A-Z][a-z]+)[\s,]+Administrative\s+Judge`),
		},
		// Summary sources in preference order: findings, analysis, then the
		// case statement. Each runs until the next major header.
		sections: []sectionBound{
			{regexp.MustCompile(`(?i)FINDINGS\s+OF\s+FACT`), regexp.MustCompile(`(?i)POLICIES|ANALYSIS`)},
			{regexp.MustCompile(`(?i)ANALYSIS`), regexp.MustCompile(`(?i)CONCLUSION`)},
			{regexp.MustCompile(`(?i)STATEMENT\s+OF\s+THE\s+CASE`), regexp.MustCompile(`(?i)FINDINGS`)},
		},
		sorSection:    regexp.MustCompile(`(?is)Statement\s+of\s+Reasons.*?(?:FINDINGS|ANALYSIS|\n\n\n)`),
		sorAllegation: regexp.MustCompile(`(?im)^\s*(?:\d+\.\s*[a-z]?\.?|SOR\s*¶\s*\d+\.[a-z]?)\s*(.+)$`),
		mitPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:mitigating\s+condition|AG\s*¶\s*\d+\([a-z]\))[^\n]*`),
			regexp.MustCompile(`(?i)(?:in\s+mitigation|mitigating\s+factor)[^\n]*`),
		},
		whitespace: regexp.MustCompile(`\s+`),
	}
}

// Date extracts the decision date from the document header. Returns "Unknown"
// when no date phrasing is found.
func (e *MetadataExtractor) Date(text string) string {
	header := text
	if len(header) > metadataDateWindow {
		header = header[:metadataDateWindow]
	}
	for _, re := range e.datePatterns {
		if m := re.FindStringSubmatch(header); m != nil {
			return m[1]
		}
	}
	return "Unknown"
}

// Judge extracts the administrative judge's name. Returns "Unknown" when no
// signature phrasing is found.
func (e *MetadataExtractor) Judge(text string) string {
	header := text
	if len(header) > metadataJudgeWindow {
		header = header[:metadataJudgeWindow]
	}
	for _, re := range e.judgePatterns {
		if m := re.FindStringSubmatch(header); m != nil {
			return m[1]
		}
	}
	return "Unknown"
}

// Summarize extracts a whitespace-collapsed summary from the findings,
// analysis, or case-statement section, capped at 1500 characters. Falls back
// to the document's opening text.
func (e *MetadataExtractor) Summarize(text string) string {
	for _, bound := range e.sections {
		loc := bound.start.FindStringIndex(text)
		if loc == nil {
			continue
		}
		section := text[loc[0]:]
		if end := bound.end.FindStringIndex(section[loc[1]-loc[0]:]); end != nil {
			section = section[:loc[1]-loc[0]+end[0]]
		}
		return e.collapse(section)
	}

	fallback := text
	if len(fallback) > summaryMaxLen {
		fallback = fallback[:summaryMaxLen]
	}
	return e.collapse(fallback)
}

// collapse normalizes whitespace and applies the summary cap.
func (e *MetadataExtractor) collapse(s string) string {
	s = strings.TrimSpace(e.whitespace.ReplaceAllString(s, " "))
	if len(s) > summaryMaxLen {
		s = s[:summaryMaxLen]
	}
	return s
}

// Allegations extracts the numbered SOR allegations, capped at 10 entries of
// at most 500 characters each.
func (e *MetadataExtractor) Allegations(text string) []string {
	section := e.sorSection.FindString(text)
	if section == "" {
		return nil
	}

	var allegations []string
	for _, m := range e.sorAllegation.FindAllStringSubmatch(section, -1) {
		clean := strings.TrimSpace(m[1])
		if len(clean) > 500 {
			clean = clean[:500]
		}
		if len(clean) <= 10 {
			continue
		}
		allegations = append(allegations, clean)
		if len(allegations) == 10 {
			break
		}
	}
	return allegations
}

// MitigatingFactors extracts mitigating-condition mentions, deduplicated and
// capped at 5 entries of at most 300 characters each.
func (e *MetadataExtractor) MitigatingFactors(text string) []string {
	var factors []string
	seen := make(map[string]bool)

	for _, re := range e.mitPatterns {
		for _, m := range re.FindAllString(text, -1) {
			clean := strings.TrimSpace(m)
			if len(clean) > 300 {
				clean = clean[:300]
			}
			if len(clean) <= 20 || seen[clean] {
				continue
			}
			seen[clean] = true
			factors = append(factors, clean)
			if len(factors) == 5 {
				return factors
			}
		}
	}
	return factors
}

// caseNumberPattern matches DOHA case numbers such as 20-01234 in file names
// and URLs.
var caseNumberPattern = regexp.MustCompile(`(\d{2}-\d+)`)

// CaseNumberFromPath extracts the case number from a decision file name or
// URL. Only the final path element is matched. Returns "" when none is
// present.
func CaseNumberFromPath(path string) string {
	m := caseNumberPattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return ""
	}
	return m[1]
}

// CaseYear derives the four-digit decision year from a case number's leading
// two digits. Values below 50 fall in the 2000s, the rest in the 1900s.
// Returns 0 when the case number does not start with two digits.
func CaseYear(caseNumber string) int {
	if len(caseNumber) < 2 {
		return 0
	}
	yy, err := strconv.Atoi(caseNumber[:2])
	if err != nil {
		return 0
	}
	if yy < 50 {
		return yy + 2000
	}
	return yy + 1900
}
