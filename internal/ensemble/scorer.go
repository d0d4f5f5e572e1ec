package ensemble

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/TeneikaAskew/doha-sub000/internal/embeddings"
	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// Weights are the relative contributions of the four signals. Signals that
// are unavailable at runtime are zeroed and the remainder renormalized.
type Weights struct {
	NGram      float64 `koanf:"ngram"`
	TFIDF      float64 `koanf:"tfidf"`
	Semantic   float64 `koanf:"semantic"`
	Contextual float64 `koanf:"contextual"`
}

// Config holds scoring configuration.
type Config struct {
	Weights   Weights `koanf:"weights"`
	Threshold float64 `koanf:"threshold"`
}

// DefaultConfig returns the standard weights and relevance threshold.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			NGram:      0.30,
			TFIDF:      0.25,
			Semantic:   0.25,
			Contextual: 0.20,
		},
		Threshold: 0.35,
	}
}

// Scores are the per-guideline signal values and the derived relevance
// decision.
type Scores struct {
	NGram      float64 `json:"ngram_score"`
	TFIDF      float64 `json:"tfidf_score"`
	Semantic   float64 `json:"semantic_score"`
	Contextual float64 `json:"contextual_score"`
	Combined   float64 `json:"combined_score"`
	Relevant   bool    `json:"relevant"`
	Confidence float64 `json:"confidence"`
}

// severeSignals escalate a guideline to severity D regardless of score.
var severeSignals = map[sead4.GuidelineCode][]*regexp.Regexp{
	"G": compileSignals(`multiple\s+dui`, `alcohol.*rehabilitation.*fail`, `alcohol use disorder.*severe`),
	"F": compileSignals(`\$\d{6,}`, `bankruptcy`, `foreclosure`, `tax.*lien`),
	"H": compileSignals(`cocaine|heroin|methamphetamine`, `drug.*trafficking`, `multiple.*positive.*test`),
	"J": compileSignals(`felony`, `pattern.*criminal`, `multiple.*arrest`, `serious.*crime`),
	"E": compileSignals(`deliberately.*false`, `concealed.*classified`, `repeated.*dishonest`),
	"I": compileSignals(`severe.*disorder`, `significant.*impairment`, `dangerous.*behavior`),
}

func compileSignals(sources ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		compiled = append(compiled, regexp.MustCompile(src))
	}
	return compiled
}

// disqualifierKeywordPattern selects significant words from condition text.
var disqualifierKeywordPattern = regexp.MustCompile(`\b\w{4,}\b`)

// disqualifierNoise are frequent four-letter words excluded from keyword
// matching.
var disqualifierNoise = map[string]bool{
	"that": true, "with": true, "such": true, "from": true, "been": true,
}

// Scorer runs the four-signal ensemble over a document and produces one
// assessment per guideline code.
type Scorer struct {
	cfg      Config
	log      *zap.Logger
	semantic *semanticIndex
}

// NewScorer creates a scorer. A nil embedder disables the semantic signal;
// its weight is redistributed over the remaining signals. A nil logger
// disables logging.
func NewScorer(ctx context.Context, cfg Config, embedder embeddings.Embedder, log *zap.Logger) (*Scorer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scorer{cfg: cfg, log: log.Named("ensemble")}

	if embedder != nil {
		index, err := newSemanticIndex(ctx, embedder)
		if err != nil {
			return nil, err
		}
		s.semantic = index
	}

	return s, nil
}

// Assess scores every guideline and returns one assessment per code in A-M
// order, plus the raw per-code scores.
func (s *Scorer) Assess(ctx context.Context, text string) ([]sead4.GuidelineAssessment, map[sead4.GuidelineCode]Scores, error) {
	scores, err := s.scoreAll(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	assessments := make([]sead4.GuidelineAssessment, 0, len(sead4.Codes()))
	for _, code := range sead4.Codes() {
		sc := scores[code]
		if sc.Relevant {
			assessments = append(assessments, s.assessRelevant(code, text, sc))
		} else {
			assessments = append(assessments, sead4.GuidelineAssessment{
				Code:          code,
				Name:          sead4.Guidelines[code].Name,
				Relevant:      false,
				Disqualifiers: []sead4.DisqualifierFinding{},
				Mitigators:    []sead4.MitigatorFinding{},
				Reasoning: fmt.Sprintf("Enhanced analysis found insufficient evidence for %s. Score: %.2f (threshold: %.2f)",
					sead4.Guidelines[code].Name, sc.Combined, s.cfg.Threshold),
				Confidence: 0.9,
			})
		}
	}

	return assessments, scores, nil
}

// scoreAll computes the four signals and the combined score per guideline.
func (s *Scorer) scoreAll(ctx context.Context, text string) (map[sead4.GuidelineCode]Scores, error) {
	docLower := strings.ToLower(text)

	var semanticScores map[sead4.GuidelineCode]float64
	if s.semantic != nil {
		var err error
		semanticScores, err = s.semantic.scoreAll(ctx, text)
		if err != nil {
			return nil, err
		}
	}

	weights := s.effectiveWeights()
	scores := make(map[sead4.GuidelineCode]Scores, len(sead4.Codes()))

	for _, code := range sead4.Codes() {
		g := sead4.Guidelines[code]

		sc := Scores{
			NGram:      ngramScore(docLower, code),
			TFIDF:      tfidfSimilarity(text, fmt.Sprintf("%s. %s", g.Name, g.Concern)),
			Semantic:   semanticScores[code],
			Contextual: contextualScore(text, code),
		}

		sc.Combined = sc.NGram*weights.NGram +
			sc.TFIDF*weights.TFIDF +
			sc.Semantic*weights.Semantic +
			sc.Contextual*weights.Contextual
		sc.Relevant = sc.Combined >= s.cfg.Threshold

		variance := populationVariance(sc.NGram, sc.TFIDF, sc.Semantic, sc.Contextual)
		sc.Confidence = max(0.6, min(0.95, 0.70+sc.Combined*0.2-variance*0.1))

		scores[code] = sc

		if sc.Relevant {
			s.log.Debug("guideline flagged",
				zap.String("code", string(code)),
				zap.Float64("combined", sc.Combined),
				zap.Float64("ngram", sc.NGram),
				zap.Float64("tfidf", sc.TFIDF),
				zap.Float64("semantic", sc.Semantic),
				zap.Float64("contextual", sc.Contextual))
		}
	}

	return scores, nil
}

// effectiveWeights zeroes the semantic weight when no embedder is configured
// and renormalizes so the active weights sum to 1.
func (s *Scorer) effectiveWeights() Weights {
	w := s.cfg.Weights
	if s.semantic == nil {
		w.Semantic = 0
	}
	total := w.NGram + w.TFIDF + w.Semantic + w.Contextual
	if total == 0 {
		return w
	}
	w.NGram /= total
	w.TFIDF /= total
	w.Semantic /= total
	w.Contextual /= total
	return w
}

// assessRelevant builds the full assessment for a guideline over threshold.
func (s *Scorer) assessRelevant(code sead4.GuidelineCode, text string, sc Scores) sead4.GuidelineAssessment {
	info := sead4.Guidelines[code]
	docLower := strings.ToLower(text)

	disqualifiers := s.detectDisqualifiers(code, text, docLower)
	mitigators := identifyMitigators(code)

	return sead4.GuidelineAssessment{
		Code:          code,
		Name:          info.Name,
		Relevant:      true,
		Severity:      s.assessSeverity(code, docLower, sc),
		Disqualifiers: disqualifiers,
		Mitigators:    mitigators,
		Reasoning:     s.buildReasoning(code, sc, len(disqualifiers), len(mitigators)),
		Confidence:    sc.Confidence,
	}
}

// assessSeverity grades by severe signal patterns first, then by the
// combined score.
func (s *Scorer) assessSeverity(code sead4.GuidelineCode, docLower string, sc Scores) sead4.Severity {
	for _, re := range severeSignals[code] {
		if re.MatchString(docLower) {
			return sead4.SeveritySevere
		}
	}
	if sc.Combined >= 0.75 {
		return sead4.SeveritySerious
	}
	return sead4.SeverityModerate
}

// detectDisqualifiers matches the top three disqualifying conditions by
// significant-word overlap, attaching the first matching sentence as
// evidence.
func (s *Scorer) detectDisqualifiers(code sead4.GuidelineCode, text, docLower string) []sead4.DisqualifierFinding {
	findings := []sead4.DisqualifierFinding{}

	for _, disq := range topConditions(sead4.Guidelines[code].Disqualifiers, 3) {
		keywords := conditionKeywords(disq.Text)
		if len(keywords) == 0 {
			continue
		}

		matches := 0
		for _, kw := range keywords {
			if strings.Contains(docLower, kw) {
				matches++
			}
		}
		if matches < 2 {
			continue
		}

		findings = append(findings, sead4.DisqualifierFinding{
			Code:       disq.Code,
			Text:       truncate(disq.Text, 100),
			Evidence:   findEvidence(text, keywords),
			Confidence: min(0.9, 0.6+float64(matches)/float64(len(keywords))*0.3),
		})
	}

	return findings
}

// identifyMitigators lists the top two mitigating conditions as partially
// applicable candidates for manual review.
func identifyMitigators(code sead4.GuidelineCode) []sead4.MitigatorFinding {
	mitigators := []sead4.MitigatorFinding{}
	for _, mitg := range topConditions(sead4.Guidelines[code].Mitigators, 2) {
		mitigators = append(mitigators, sead4.MitigatorFinding{
			Code:          mitg.Code,
			Text:          truncate(mitg.Text, 100),
			Applicability: sead4.MitigatorPartial,
			Reasoning:     "Potentially applicable based on document analysis",
		})
	}
	return mitigators
}

// buildReasoning renders the per-guideline explanation with component
// scores. The semantic component is omitted when embeddings are disabled.
func (s *Scorer) buildReasoning(code sead4.GuidelineCode, sc Scores, numDisqualifiers, numMitigators int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Guideline %s (%s) flagged as relevant with high confidence. ", code, sead4.Guidelines[code].Name)
	fmt.Fprintf(&b, "Enhanced analysis score: %.2f (N-gram: %.2f, TF-IDF: %.2f, ", sc.Combined, sc.NGram, sc.TFIDF)
	if s.semantic != nil {
		fmt.Fprintf(&b, "Semantic: %.2f, ", sc.Semantic)
	}
	fmt.Fprintf(&b, "Contextual: %.2f). ", sc.Contextual)
	fmt.Fprintf(&b, "Identified %d potential disqualifying condition(s). ", numDisqualifiers)
	fmt.Fprintf(&b, "Found %d potentially applicable mitigating condition(s).", numMitigators)
	return b.String()
}

// Overall aggregates ensemble assessments into a recommendation: severe or
// widespread concerns are unfavorable, a few moderate concerns conditional,
// none insufficient information.
func (s *Scorer) Overall(assessments []sead4.GuidelineAssessment, scores map[sead4.GuidelineCode]Scores) sead4.OverallAssessment {
	var relevant []sead4.GuidelineAssessment
	severeCount := 0
	for _, g := range assessments {
		if !g.Relevant {
			continue
		}
		relevant = append(relevant, g)
		if g.Severity == sead4.SeveritySerious || g.Severity == sead4.SeveritySevere {
			severeCount++
		}
	}

	var recommendation sead4.Recommendation
	switch {
	case len(relevant) == 0:
		recommendation = sead4.RecommendInsufficientInfo
	case severeCount >= 1 || len(relevant) >= 3:
		recommendation = sead4.RecommendUnfavorable
	default:
		recommendation = sead4.RecommendConditional
	}

	confidence := 0.5
	if len(relevant) > 0 {
		sum := 0.0
		for _, g := range relevant {
			sum += scores[g.Code].Confidence
		}
		confidence = sum / float64(len(relevant))
	}

	concerns := []string{}
	mitigations := []string{}
	for _, g := range relevant {
		concerns = append(concerns, fmt.Sprintf("%s: %d disqualifying condition(s) identified", g.Name, len(g.Disqualifiers)))
		applicable := 0
		for _, m := range g.Mitigators {
			if m.Applicability == sead4.MitigatorFull || m.Applicability == sead4.MitigatorPartial {
				applicable++
			}
		}
		mitigations = append(mitigations, fmt.Sprintf("%s: %d potentially applicable mitigating condition(s)", g.Name, applicable))
	}

	return sead4.OverallAssessment{
		Recommendation: recommendation,
		Confidence:     confidence,
		Summary:        s.buildSummary(len(relevant), severeCount),
		KeyConcerns:    concerns,
		KeyMitigations: mitigations,
	}
}

func (s *Scorer) buildSummary(numRelevant, numSevere int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Enhanced analysis identified %d relevant guideline(s) using N-grams, TF-IDF, ", numRelevant)
	if s.semantic != nil {
		b.WriteString("semantic embeddings, ")
	}
	fmt.Fprintf(&b, "and contextual analysis. Found %d severe concern area(s). ", numSevere)
	b.WriteString("Results show higher precision than keyword-only matching.")
	return b.String()
}

// conditionKeywords extracts significant words of four or more characters,
// excluding common noise words.
func conditionKeywords(text string) []string {
	var keywords []string
	for _, w := range disqualifierKeywordPattern.FindAllString(strings.ToLower(text), -1) {
		if !disqualifierNoise[w] {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// findEvidence returns the first sentence containing any of the first three
// keywords, truncated to 200 characters.
func findEvidence(text string, keywords []string) string {
	leading := keywords
	if len(leading) > 3 {
		leading = leading[:3]
	}
	for _, sentence := range strings.Split(text, ".") {
		lower := strings.ToLower(sentence)
		for _, kw := range leading {
			if strings.Contains(lower, kw) {
				evidence := strings.TrimSpace(sentence)
				if len(evidence) > 200 {
					evidence = evidence[:200]
				}
				return evidence
			}
		}
	}
	return "Evidence found in document"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func topConditions(conditions []sead4.Condition, n int) []sead4.Condition {
	if len(conditions) < n {
		return conditions
	}
	return conditions[:n]
}

// populationVariance over the four signal values.
func populationVariance(values ...float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return variance / float64(len(values))
}
