package sead4

// Outcome is the final disposition of a hearing or appeal decision.
type Outcome string

const (
	OutcomeGranted  Outcome = "GRANTED"
	OutcomeDenied   Outcome = "DENIED"
	OutcomeRevoked  Outcome = "REVOKED"
	OutcomeRemanded Outcome = "REMANDED"
	OutcomeUnknown  Outcome = "UNKNOWN"
)

// GuidelineCode is one of the 13 fixed adjudicative guideline codes A-M.
type GuidelineCode string

// Codes returns all guideline codes in their fixed A-M order.
func Codes() []GuidelineCode {
	return []GuidelineCode{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}
}

// Valid reports whether c is one of the 13 defined codes.
func (c GuidelineCode) Valid() bool {
	_, ok := Guidelines[c]
	return ok
}

// Severity grades how serious a guideline concern is, from A (minor or
// mitigated) through D (severe or disqualifying).
type Severity string

const (
	SeverityMinor    Severity = "A"
	SeverityModerate Severity = "B"
	SeveritySerious  Severity = "C"
	SeveritySevere   Severity = "D"
)

// MitigatorApplicability grades how strongly a mitigating condition applies.
type MitigatorApplicability string

const (
	MitigatorFull    MitigatorApplicability = "FULL"
	MitigatorPartial MitigatorApplicability = "PARTIAL"
	MitigatorMinimal MitigatorApplicability = "MINIMAL"
	MitigatorNone    MitigatorApplicability = "NONE"
)

// DisqualifierFinding records a disqualifying condition detected in a document.
type DisqualifierFinding struct {
	Code       string  `json:"code"` // paragraph citation, e.g. "AG ¶ 19(a)"
	Text       string  `json:"text"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

// MitigatorFinding records a potentially applicable mitigating condition.
type MitigatorFinding struct {
	Code          string                 `json:"code"`
	Text          string                 `json:"text"`
	Applicability MitigatorApplicability `json:"applicability"`
	Reasoning     string                 `json:"reasoning"`
	Evidence      string                 `json:"evidence,omitempty"`
}

// GuidelineAssessment is the per-guideline result of relevance and severity
// classification. Exactly one assessment is produced per code A-M for every
// analyzed document; Severity is set only when Relevant is true.
type GuidelineAssessment struct {
	Code          GuidelineCode         `json:"code"`
	Name          string                `json:"name"`
	Relevant      bool                  `json:"relevant"`
	Severity      Severity              `json:"severity,omitempty"`
	Disqualifiers []DisqualifierFinding `json:"disqualifiers"`
	Mitigators    []MitigatorFinding    `json:"mitigators"`
	Reasoning     string                `json:"reasoning"`
	Confidence    float64               `json:"confidence"`
}

// FindingDirection is the direction of a formal finding.
type FindingDirection string

const (
	FindingFor     FindingDirection = "FOR"
	FindingAgainst FindingDirection = "AGAINST"
)

// SubparagraphFinding is one subparagraph entry of a formal finding, with a
// normalized paragraph reference such as "1.a" or "1.a-1.b".
type SubparagraphFinding struct {
	ParagraphRef string           `json:"paragraph_ref"`
	Finding      FindingDirection `json:"finding"`
}

// FormalFinding is the adjudicated finding for one guideline from a
// decision's Formal Findings section.
type FormalFinding struct {
	GuidelineCode GuidelineCode         `json:"guideline_code"`
	GuidelineName string                `json:"guideline_name"`
	Overall       FindingDirection      `json:"overall"`
	Subparagraphs []SubparagraphFinding `json:"subparagraphs"`
}

// Recommendation is the synthesized overall disposition suggestion.
type Recommendation string

const (
	RecommendFavorable        Recommendation = "FAVORABLE"
	RecommendUnfavorable      Recommendation = "UNFAVORABLE"
	RecommendConditional      Recommendation = "CONDITIONAL"
	RecommendInsufficientInfo Recommendation = "INSUFFICIENT_INFO"
)

// OverallAssessment is the aggregated result over all guideline assessments.
type OverallAssessment struct {
	Recommendation Recommendation `json:"recommendation"`
	Confidence     float64        `json:"confidence"`
	Summary        string         `json:"summary"`
	KeyConcerns    []string       `json:"key_concerns"`
	KeyMitigations []string       `json:"key_mitigations"`
}

// Precedent is a retrieved similar prior case, supplied by an external
// precedent-retrieval component.
type Precedent struct {
	CaseNumber     string          `json:"case_number"`
	Outcome        Outcome         `json:"outcome"`
	Guidelines     []GuidelineCode `json:"guidelines"`
	RelevanceScore float64         `json:"relevance_score"`
	Summary        string          `json:"summary"`
}

// GuidelineFrequency counts how often a guideline appears across precedents.
type GuidelineFrequency struct {
	Code  GuidelineCode `json:"code"`
	Count int           `json:"count"`
}

// PrecedentStats are aggregate outcome proportions over retrieved precedents.
type PrecedentStats struct {
	Total             int                  `json:"total"`
	DeniedPercentage  float64              `json:"denied_percentage"`
	GrantedPercentage float64              `json:"granted_percentage"`
	MostCommonOutcome Outcome              `json:"most_common_outcome"`
	CommonGuidelines  []GuidelineFrequency `json:"common_guidelines"`
	AvgRelevance      float64              `json:"avg_relevance"`
}
