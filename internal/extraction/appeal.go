package extraction

import (
	"regexp"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

const (
	// appealHeaderWindow is the span scanned for appeal-board markers.
	appealHeaderWindow = 2500
	// appealOrderWindow bounds the Order section when no ORDER header is found.
	appealOrderWindow = 2000
	// appealDigestWindow is the span near the document start holding the
	// digest that restates the board's disposition.
	appealDigestWindow = 2000
)

// orderAction is the appellate body's action stated in the Order section.
type orderAction int

const (
	orderUnknown orderAction = iota
	orderAffirmed
	orderReversed
)

// dispositionSign is the direction of the underlying hearing decision.
type dispositionSign int

const (
	signUnknown dispositionSign = iota
	signAdverse
	signFavorable
)

// AppealResolver determines the effective outcome of an appeal decision by
// combining the board's order (affirmed/reversed/remanded) with the
// direction of the underlying hearing decision.
type AppealResolver struct {
	markers   []*regexp.Regexp
	orderHdr  *regexp.Regexp
	remanded  *regexp.Regexp
	affirmed  *regexp.Regexp
	reversed  *regexp.Regexp
	qualified []qualifiedRule
	adverse   []*regexp.Regexp
	favorable []*regexp.Regexp
}

// qualifiedRule maps an order phrase that names the underlying decision's
// direction straight to an outcome.
type qualifiedRule struct {
	regex   *regexp.Regexp
	outcome sead4.Outcome
}

// NewAppealResolver creates a resolver with the built-in phrase tables.
func NewAppealResolver() *AppealResolver {
	return &AppealResolver{
		markers: compilePatterns([]string{
			`appeal\s+board`,
			`cross[-\s]appeal`,
			`applicant\s+(?:has\s+)?appealed`,
			`government\s+(?:has\s+)?appealed`,
			`on\s+appeal`,
		}),
		orderHdr: regexp.MustCompile(`(?im)^\s*ORDER\s*$`),
		remanded: regexp.MustCompile(`(?i)\bremanded\b`),
		affirmed: regexp.MustCompile(`(?i)decision\s+(?:of\s+the\s+(?:administrative\s+)?judge\s+)?(?:is\s+)?affirmed`),
		reversed: regexp.MustCompile(`(?i)decision\s+(?:of\s+the\s+(?:administrative\s+)?judge\s+)?(?:is\s+)?reversed`),
		qualified: []qualifiedRule{
			{regexp.MustCompile(`(?i)adverse\s+decision\s+(?:is\s+)?affirmed`), sead4.OutcomeDenied},
			{regexp.MustCompile(`(?i)favorable\s+decision\s+(?:is\s+)?affirmed`), sead4.OutcomeGranted},
			{regexp.MustCompile(`(?i)adverse\s+decision\s+(?:is\s+)?reversed`), sead4.OutcomeGranted},
			{regexp.MustCompile(`(?i)favorable\s+decision\s+(?:is\s+)?reversed`), sead4.OutcomeDenied},
		},
		// Denial indicators are checked before grant indicators: most
		// rejected appeals affirm a denial.
		adverse: compilePatterns([]string{
			`judge\s+denied`,
			`adverse\s+decision`,
			`applicant\s+(?:has\s+)?appealed`,
			`decision\s+is\s+sustainable`,
		}),
		favorable: compilePatterns([]string{
			`judge\s+granted`,
			`favorable\s+decision`,
			`government\s+(?:has\s+)?appealed`,
			`cannot\s+be\s+sustained`,
		}),
	}
}

// IsAppeal reports whether the document header carries appeal-board markers.
// Documents without markers are hearing decisions.
func (r *AppealResolver) IsAppeal(text string) bool {
	header := text
	if len(header) > appealHeaderWindow {
		header = header[:appealHeaderWindow]
	}
	for _, re := range r.markers {
		if re.MatchString(header) {
			return true
		}
	}
	return false
}

// Resolve determines the appeal outcome. Remand takes precedence over
// everything else; a qualified order phrase resolves immediately; an
// unqualified AFFIRMED/REVERSED is combined with the underlying decision's
// inferred direction; anything unresolved falls back to the digest near the
// document start, then to OutcomeUnknown.
func (r *AppealResolver) Resolve(text string) sead4.Outcome {
	order, body := r.splitOrder(text)
	digest := text
	if len(digest) > appealDigestWindow {
		digest = digest[:appealDigestWindow]
	}

	if r.remanded.MatchString(order) || r.remanded.MatchString(digest) {
		return sead4.OutcomeRemanded
	}

	for _, rule := range r.qualified {
		if rule.regex.MatchString(order) {
			return rule.outcome
		}
	}

	action := orderUnknown
	switch {
	case r.reversed.MatchString(order):
		action = orderReversed
	case r.affirmed.MatchString(order):
		action = orderAffirmed
	}

	if action != orderUnknown {
		if outcome, ok := resolveDirection(action, r.inferSign(body)); ok {
			return outcome
		}
	}

	// Digest fallback: the same directional phrases near the start.
	for _, rule := range r.qualified {
		if rule.regex.MatchString(digest) {
			return rule.outcome
		}
	}

	return sead4.OutcomeUnknown
}

// splitOrder locates the Order section. With an explicit ORDER header the
// section runs from the header to the end and the body is everything before
// it; otherwise the tail window serves as the section and the whole document
// as the body.
func (r *AppealResolver) splitOrder(text string) (order, body string) {
	if loc := r.orderHdr.FindStringIndex(text); loc != nil {
		return text[loc[0]:], text[:loc[0]]
	}
	order = text
	if len(order) > appealOrderWindow {
		order = order[len(order)-appealOrderWindow:]
	}
	return order, text
}

// inferSign infers the underlying decision's direction from the body.
func (r *AppealResolver) inferSign(body string) dispositionSign {
	for _, re := range r.adverse {
		if re.MatchString(body) {
			return signAdverse
		}
	}
	for _, re := range r.favorable {
		if re.MatchString(body) {
			return signFavorable
		}
	}
	return signUnknown
}

// resolveDirection applies the order x underlying-direction table.
func resolveDirection(action orderAction, sign dispositionSign) (sead4.Outcome, bool) {
	switch {
	case action == orderAffirmed && sign == signAdverse:
		return sead4.OutcomeDenied, true
	case action == orderAffirmed && sign == signFavorable:
		return sead4.OutcomeGranted, true
	case action == orderReversed && sign == signAdverse:
		return sead4.OutcomeGranted, true
	case action == orderReversed && sign == signFavorable:
		return sead4.OutcomeDenied, true
	}
	return sead4.OutcomeUnknown, false
}
