package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// FormalFindingsExtractor parses the Formal Findings section of a decision
// into per-guideline overall findings and per-subparagraph findings.
type FormalFindingsExtractor struct {
	sectionStart *regexp.Regexp
	sectionEnd   *regexp.Regexp
	headers      []headerFormat
	subparas     []*regexp.Regexp
	nameCodes    []nameCode
}

// headerFormat is one per-guideline header layout. Formats are tried in
// order; a guideline already resolved by an earlier format is not
// overwritten by a later one.
type headerFormat struct {
	regex *regexp.Regexp
	// Group indexes into the submatch slice; 0 means the group is absent.
	paraGroup int
	codeGroup int
	nameGroup int
	dirGroup  int
}

// nameCode resolves guideline common-name words to a code. Entries are
// checked in order, first substring match wins.
type nameCode struct {
	keyword string
	code    sead4.GuidelineCode
}

// headerEntry is an accepted per-guideline header with its position inside
// the bounded section.
type headerEntry struct {
	start   int
	end     int
	para    string
	code    sead4.GuidelineCode
	overall sead4.FindingDirection
}

// NewFormalFindingsExtractor creates an extractor with the built-in header
// and subparagraph patterns.
func NewFormalFindingsExtractor() *FormalFindingsExtractor {
	return &FormalFindingsExtractor{
		sectionStart: regexp.MustCompile(`(?im)^\s*FORMAL\s+FINDINGS?\b.*$`),
		// Line-start anchor guards against "conclusion" mid-sentence.
		sectionEnd: regexp.MustCompile(`(?im)^\s*CONCLUSIONS?\b`),
		headers: []headerFormat{
			// Paragraph 1, Guideline F: AGAINST APPLICANT
			// (optionally with a parenthetical guideline name)
			{
				regex:     regexp.MustCompile(`(?i)Paragraph\s+(\d+)[,.:]?\s*\(?\s*Guideline\s+([A-M])\b\)?(?:\s*\([^)]{0,60}\))?\s*:\s*(FOR|AGAINST)\s+APPLICANT`),
				paraGroup: 1, codeGroup: 2, dirGroup: 3,
			},
			// GUIDELINE F (Financial Considerations): AGAINST APPLICANT
			{
				regex:     regexp.MustCompile(`(?i)\bGUIDELINE\s+([A-M])\b\s*(?:\([^)]{0,60}\))?\s*:\s*(FOR|AGAINST)\s+APPLICANT`),
				codeGroup: 1, dirGroup: 2,
			},
			// Paragraph 1, Financial Considerations: AGAINST APPLICANT
			{
				regex:     regexp.MustCompile(`(?i)Paragraph\s+(\d+)[,.:]?\s*([A-Za-z][A-Za-z '/-]{2,60}?)\s*:\s*(FOR|AGAINST)\s+APPLICANT`),
				paraGroup: 1, nameGroup: 2, dirGroup: 3,
			},
			// Financial Considerations (Security) Concern: AGAINST APPLICANT
			{
				regex:     regexp.MustCompile(`(?i)([A-Za-z][A-Za-z '/-]{2,60}?)\s*(?:\(Security\)\s*)?Concerns?\s*:\s*(FOR|AGAINST)\s+APPLICANT`),
				nameGroup: 1, dirGroup: 2,
			},
		},
		subparas: []*regexp.Regexp{
			// Subparagraphs 1.a-1.b: Against Applicant
			regexp.MustCompile(`(?i)subparagraphs?\s+(\d+\.[a-z](?:\s*[-–]\s*(?:\d+\.)?[a-z])?(?:\s*,\s*(?:\d+\.)?[a-z])*)\s*:\s*(for|against)\s+applicant`),
			// Numbered refs with the finding on the following line
			regexp.MustCompile(`(?i)subparagraphs?\s+(\d+\.[a-z](?:\s*[-–]\s*(?:\d+\.)?[a-z])?(?:\s*,\s*(?:\d+\.)?[a-z])*)\s*:?\s*\n\s*(for|against)\s+applicant`),
			// Subparagraphs a-b, d: Against Applicant (bare letters)
			regexp.MustCompile(`(?i)subparagraphs?\s+([a-z](?:\s*[-–]\s*[a-z])?(?:\s*,\s*[a-z])*)\s*:\s*(for|against)\s+applicant`),
			// Bare letters with the finding on the following line
			regexp.MustCompile(`(?i)subparagraphs?\s+([a-z](?:\s*[-–]\s*[a-z])?(?:\s*,\s*[a-z])*)\s*:?\s*\n\s*(for|against)\s+applicant`),
			// Numbered refs without the Subparagraph keyword
			regexp.MustCompile(`(?i)\b(\d+\.[a-z](?:\s*[-–]\s*\d+\.[a-z])?)\s*:\s*(for|against)\s+applicant`),
		},
		nameCodes: []nameCode{
			{"foreign influence", "B"},
			{"foreign preference", "C"},
			{"personal conduct", "E"},
			{"financial", "F"},
			{"alcohol", "G"},
			{"drug", "H"},
			{"psychological", "I"},
			{"criminal", "J"},
			{"protected information", "K"},
			{"outside activities", "L"},
			{"information technology", "M"},
			{"sexual", "D"},
			{"allegiance", "A"},
		},
	}
}

// Extract parses the Formal Findings section into a mapping keyed by
// guideline code. Only guidelines adjudicated in the document appear.
// Extraction is idempotent: subparagraphs are deduplicated by
// (normalized ref, finding) regardless of pattern-match order.
func (e *FormalFindingsExtractor) Extract(text string) map[sead4.GuidelineCode]sead4.FormalFinding {
	section := e.boundSection(text)
	findings := make(map[sead4.GuidelineCode]sead4.FormalFinding)
	if section == "" {
		return findings
	}

	entries := e.collectHeaders(section)
	if len(entries) == 0 {
		return findings
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].start < entries[j].start })

	for i, entry := range entries {
		spanEnd := len(section)
		if i+1 < len(entries) {
			spanEnd = entries[i+1].start
		}
		span := section[entry.end:spanEnd]

		findings[entry.code] = sead4.FormalFinding{
			GuidelineCode: entry.code,
			GuidelineName: sead4.Guidelines[entry.code].Name,
			Overall:       entry.overall,
			Subparagraphs: e.extractSubparagraphs(span, entry.para),
		}
	}

	return findings
}

// boundSection returns the text between the Formal Findings header and the
// next Conclusion(s) header. When the header is absent the whole document is
// searched best-effort.
func (e *FormalFindingsExtractor) boundSection(text string) string {
	start := 0
	if loc := e.sectionStart.FindStringIndex(text); loc != nil {
		start = loc[1]
	}
	section := text[start:]
	if loc := e.sectionEnd.FindStringIndex(section); loc != nil {
		section = section[:loc[0]]
	}
	return section
}

// collectHeaders runs the header formats in precedence order, keeping the
// first resolution per guideline code.
func (e *FormalFindingsExtractor) collectHeaders(section string) []headerEntry {
	var entries []headerEntry
	resolved := make(map[sead4.GuidelineCode]bool)

	for _, format := range e.headers {
		for _, m := range format.regex.FindAllStringSubmatchIndex(section, -1) {
			entry, ok := e.parseHeader(section, format, m)
			if !ok || resolved[entry.code] {
				continue
			}
			resolved[entry.code] = true
			entries = append(entries, entry)
		}
	}

	return entries
}

// parseHeader builds a headerEntry from one regex match.
func (e *FormalFindingsExtractor) parseHeader(section string, format headerFormat, m []int) (headerEntry, bool) {
	group := func(idx int) string {
		if idx == 0 || m[2*idx] < 0 {
			return ""
		}
		return section[m[2*idx]:m[2*idx+1]]
	}

	entry := headerEntry{start: m[0], end: m[1], para: "1"}

	if p := group(format.paraGroup); p != "" {
		entry.para = p
	}

	switch {
	case format.codeGroup != 0:
		entry.code = sead4.GuidelineCode(strings.ToUpper(group(format.codeGroup)))
	case format.nameGroup != 0:
		code, ok := e.resolveName(group(format.nameGroup))
		if !ok {
			return headerEntry{}, false
		}
		entry.code = code
	default:
		return headerEntry{}, false
	}

	if !entry.code.Valid() {
		return headerEntry{}, false
	}

	entry.overall = sead4.FindingDirection(strings.ToUpper(group(format.dirGroup)))
	return entry, true
}

// resolveName maps guideline common-name words to a code.
func (e *FormalFindingsExtractor) resolveName(name string) (sead4.GuidelineCode, bool) {
	lower := strings.ToLower(name)
	for _, nc := range e.nameCodes {
		if strings.Contains(lower, nc.keyword) {
			return nc.code, true
		}
	}
	return "", false
}

// extractSubparagraphs runs the subparagraph patterns over one guideline's
// span, normalizes letter-only references with the enclosing paragraph
// number, and deduplicates by (ref, finding).
func (e *FormalFindingsExtractor) extractSubparagraphs(span, para string) []sead4.SubparagraphFinding {
	var result []sead4.SubparagraphFinding
	seen := make(map[sead4.SubparagraphFinding]bool)

	for _, re := range e.subparas {
		for _, m := range re.FindAllStringSubmatch(span, -1) {
			finding := sead4.FindingDirection(strings.ToUpper(m[2]))
			for _, ref := range splitRefs(m[1], para) {
				sp := sead4.SubparagraphFinding{ParagraphRef: ref, Finding: finding}
				if seen[sp] {
					continue
				}
				seen[sp] = true
				result = append(result, sp)
			}
		}
	}

	return result
}

// splitRefs splits a reference expression on commas and normalizes each
// item. Letter-only tokens are prefixed with the enclosing paragraph number;
// range separators are normalized to a single hyphen.
func splitRefs(expr, para string) []string {
	var refs []string
	for _, item := range strings.Split(expr, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := regexp.MustCompile(`\s*[-–]\s*`).Split(item, -1)
		for i, part := range parts {
			parts[i] = normalizeRef(strings.TrimSpace(part), para)
		}
		refs = append(refs, strings.Join(parts, "-"))
	}
	return refs
}

// normalizeRef prefixes bare letters with the paragraph number.
func normalizeRef(token, para string) string {
	if len(token) == 1 && token[0] >= 'a' && token[0] <= 'z' {
		return para + "." + token
	}
	return strings.ToLower(token)
}
