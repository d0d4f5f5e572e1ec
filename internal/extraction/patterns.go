package extraction

import (
	"regexp"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// outcomePatternSources lists, per outcome, the dispositive phrasings seen in
// published hearing and appeal decisions. Order is stable for reporting but
// carries no precedence: classification is rightmost-match-wins across all
// outcomes (see OutcomeClassifier).
var outcomePatternSources = map[sead4.Outcome][]string{
	sead4.OutcomeGranted: {
		`clearance\s+is\s+granted`,
		`eligibility\s+for\s+access\s+to\s+classified\s+information\s+is\s+granted`,
		`eligibility\s+[^.]{0,50}\s+is\s+granted`,
		`access\s+to\s+classified\s+information\s+is\s+granted`,
		`favorable\s+determination`,
		`security\s+clearance\s+is\s+granted`,
		`eligibility\s+is\s+granted`,
		`eligibility\s+granted`,
		`clearance\s+granted`,
		`clearance\s+eligibility\s+is\s+granted`,
		`cac\s+eligibility\s+is\s+granted`,
		`trustworthiness\s+(?:designation\s+)?(?:is\s+)?granted`,
		`adp.{0,20}eligibility\s+(?:is\s+)?granted`,
		`eligibility\s+for\s+(?:a\s+)?(?:adp|public\s+trust)\s+position\s+(?:is\s+)?granted`,
		`(?:adp|public\s+trust)\s+position\s+(?:is\s+)?granted`,
		`request\s+for\s+(?:a\s+)?position\s+of\s+trust\s+is\s+granted`,
		`eligibility\s+for\s+access\s+to\s+sensitive\s+information.*?(?:is\s+)?granted`,
		`eligibility\s+for\s+(?:assignment\s+to\s+)?sensitive\s+(?:positions?|duties)\s+is\s+granted`,
		`assignment\s+to\s+sensitive\s+(?:positions?|duties)\s+is\s+granted`,
		`it\s+is\s+clearly\s+consistent[\s\d]*with\s+the\s+national\s+interests?\s+to\s+grant`,
		`clearly\s+consistent[\s\d]*with\s+the\s+national\s+interests?\s+to\s+grant`,
		`clearly\s+consistent[\s\d]*with\s+the\s+interests\s+of\s+national\s+security`,
		`clearly\s+consistent[\s\d]*with\s+the\s+security\s+interests`,
		`clearly\s+consistent[\s\n]*with\s+national\s+security\s+to\s+(?:approve|grant|continue)`,
		`(?:it\s+is\s+)?clearly[\s\n]+consistent[\s\n]+to[\s\n]+grant`,
		`clearly\s+consistent[\s\n]*with\s+the\s+national\s+interests?\s+to[\s\n]+(?:make|continue)`,
		`national\s+security\s+eligibility\s+is\s+granted`,
		`favorable\s+decision\s+(?:is\s+)?affirmed`,
		`adverse\s+decision\s+(?:is\s+)?reversed`,
		`adverse\s+findings\s+are\s+not\s+sustainable`,
	},
	sead4.OutcomeDenied: {
		`clearance\s+is\s+denied`,
		`eligibility\s+for\s+access\s+to\s+classified\s+information\s+is\s+denied`,
		`eligibility\s+[^.]{0,50}\s+is\s+denied`,
		`access\s+to\s+classified\s+information\s+is\s+denied`,
		`unfavorable\s+determination`,
		`security\s+clearance\s+is\s+denied`,
		`eligibility\s+is\s+denied`,
		`eligibility\s+denied`,
		`clearance\s+denied`,
		`clearance\s+eligibility\s+is\s+denied`,
		`cac\s+eligibility\s+is\s+denied`,
		`trustworthiness\s+(?:designation\s+)?is\s+denied`,
		`adp.{0,20}eligibility\s+is\s+denied`,
		`eligibility\s+for\s+a\s+public\s+trust\s+position\s+is\s+denied`,
		`public\s+trust\s+position\s+is\s+denied`,
		`eligibility\s+for\s+(?:assignment\s+to\s+)?sensitive\s+(?:positions?|duties)\s+is\s+denied`,
		`assignment\s+to\s+sensitive\s+(?:positions?|duties)\s+is\s+denied`,
		`it\s+is\s+not\s+clearly\s+consistent[\s\d]*with\s+the\s+national\s+interest`,
		`not\s+clearly\s+consistent[\s\d]*with\s+the\s+national\s+interest`,
		`not\s+clearly\s+consistent[\s\d]*with\s+the\s+interests\s+of\s+national\s+security`,
		`not\s+clearly\s+consistent[\s\d]*with\s+the\s+security\s+interests`,
		`not[\s\n]+clearly\s+consistent\s+with\s+national\s+security`,
		`it\s+is\s+clearly\s+not\s+consistent[\s\d]*with\s+the\s+national\s+interest`,
		`clearly\s+not\s+consistent[\s\d]*with\s+the\s+national\s+interest`,
		`national\s+security\s+eligibility\s+is\s+denied`,
		`eligibility\s+for\s+(?:a\s+)?(?:adp|public\s+trust)\s+position\s+(?:is\s+)?denied`,
		`(?:adp|public\s+trust)\s+position\s+(?:is\s+)?denied`,
		`request\s+for\s+(?:a\s+)?position\s+of\s+trust\s+is\s+denied`,
		`eligibility\s+for\s+access\s+to\s+sensitive\s+information.*?(?:is\s+)?denied`,
		`clearly\s+consistent[\s\n]*with\s+the\s+national\s+interests?\s+to[\s\n]+deny`,
		`adverse\s+decision\s+(?:is\s+)?affirmed`,
		`favorable\s+decision\s+(?:is\s+)?reversed`,
		`favorable\s+(?:security\s+)?(?:clearance\s+)?determination\s+cannot\s+be\s+sustained`,
		`decision\s+(?:is\s+)?not\s+sustainable[^.]*reversed`,
		`record\s+(?:evidence\s+)?(?:is\s+)?not\s+sufficient\s+to\s+mitigate`,
		`runs\s+contrary\s+to\s+the\s+(?:weight\s+of\s+the\s+)?record\s+evidence[^.]*not\s+sustainable`,
	},
	sead4.OutcomeRevoked: {
		`clearance\s+is\s+revoked`,
		`eligibility\s+[^.]{0,50}\s+is\s+revoked`,
		`access\s+to\s+classified\s+information\s+is\s+revoked`,
		`security\s+clearance\s+is\s+revoked`,
		`eligibility\s+revoked`,
		`clearance\s+revoked`,
	},
	sead4.OutcomeRemanded: {
		`case\s+(?:is\s+)?remanded`,
		`decision\s+(?:is\s+)?remanded`,
		`remanded\s+to\s+the\s+administrative\s+judge`,
		`remanded\s+for\s+(?:further|additional)\s+proceedings`,
	},
}

// guidelinePatternSources covers, per guideline, the formal "Guideline X"
// phrasing, the guideline's common name, and its AG paragraph citation range.
var guidelinePatternSources = map[sead4.GuidelineCode]string{
	"A": `Guideline\s*A|Allegiance|AG\s*¶\s*2`,
	"B": `Guideline\s*B|Foreign\s*Influence|AG\s*¶\s*6|AG\s*¶\s*7`,
	"C": `Guideline\s*C|Foreign\s*Preference|AG\s*¶\s*9|AG\s*¶\s*10`,
	"D": `Guideline\s*D|Sexual\s*Behavior|AG\s*¶\s*12|AG\s*¶\s*13`,
	"E": `Guideline\s*E|Personal\s*Conduct|AG\s*¶\s*15|AG\s*¶\s*16`,
	"F": `Guideline\s*F|Financial\s*Considerations|AG\s*¶\s*18|AG\s*¶\s*19|AG\s*¶\s*20`,
	"G": `Guideline\s*G|Alcohol\s*Consumption|AG\s*¶\s*21|AG\s*¶\s*22`,
	"H": `Guideline\s*H|Drug\s*Involvement|AG\s*¶\s*24|AG\s*¶\s*25|AG\s*¶\s*26`,
	"I": `Guideline\s*I|Psychological\s*Conditions|AG\s*¶\s*27|AG\s*¶\s*28`,
	"J": `Guideline\s*J|Criminal\s*Conduct|AG\s*¶\s*30|AG\s*¶\s*31|AG\s*¶\s*32`,
	"K": `Guideline\s*K|Handling\s*Protected\s*Information|AG\s*¶\s*33|AG\s*¶\s*34`,
	"L": `Guideline\s*L|Outside\s*Activities|AG\s*¶\s*36|AG\s*¶\s*37`,
	"M": `Guideline\s*M|Use\s*of\s*Information\s*Technology|AG\s*¶\s*39|AG\s*¶\s*40`,
}

// compilePatterns compiles a pattern list case-insensitively. Tables are
// static, so compilation failures are programmer errors.
func compilePatterns(sources []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+src))
	}
	return compiled
}
