package sead4

// SeverityCriterion describes one severity grade of an adjudicative concern.
type SeverityCriterion struct {
	Level       string
	Description string
	Indicators  []string
}

// SeverityCriteria maps each severity grade to its assessment criteria.
var SeverityCriteria = map[Severity]SeverityCriterion{
	SeverityMinor: {
		Level:       "Minor/Mitigated",
		Description: "Issue is old, isolated, fully mitigated, or clearly unlikely to recur",
		Indicators: []string{
			"Behavior occurred many years ago (typically 5+ years)",
			"Single isolated incident",
			"Strong evidence of rehabilitation",
			"All mitigating conditions apply",
			"No pattern of behavior",
		},
	},
	SeverityModerate: {
		Level:       "Moderate",
		Description: "Recent but showing rehabilitation, partial mitigation present",
		Indicators: []string{
			"Behavior occurred 2-5 years ago",
			"Some mitigating factors present",
			"Evidence of positive changes",
			"Limited pattern (2-3 incidents)",
			"Ongoing improvement demonstrated",
		},
	},
	SeveritySerious: {
		Level:       "Serious",
		Description: "Pattern of behavior, incomplete mitigation, ongoing concern",
		Indicators: []string{
			"Recent behavior (within 2 years)",
			"Pattern of similar incidents",
			"Limited or insufficient mitigation",
			"Concerns about recurrence",
			"Multiple guidelines implicated",
		},
	},
	SeveritySevere: {
		Level:       "Severe/Disqualifying",
		Description: "Bond Amendment triggers, active issues, no meaningful mitigation",
		Indicators: []string{
			"Currently ongoing behavior",
			"Bond Amendment disqualifier applies",
			"No credible mitigation available",
			"Poses active risk to national security",
			"Felony conviction with incarceration >1 year (for SCI/SAP/RD)",
		},
	},
}

// WholePersonFactors lists the variables weighed during the whole-person
// adjudicative examination.
var WholePersonFactors = []string{
	"The nature, extent, and seriousness of the conduct",
	"The circumstances surrounding the conduct, to include knowledgeable participation",
	"The frequency and recency of the conduct",
	"The individual's age and maturity at the time of the conduct",
	"The extent to which participation is voluntary",
	"The presence or absence of rehabilitation and other permanent behavioral changes",
	"The motivation for the conduct",
	"The potential for pressure, coercion, exploitation, or duress",
	"The likelihood of continuation or recurrence",
}
