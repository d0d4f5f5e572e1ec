// Package ensemble scores guideline relevance by combining four signals:
// n-gram phrase matching, TF-IDF similarity against the guideline concern
// text, semantic embedding similarity, and contextual keyword co-occurrence.
// Signals a deployment cannot provide drop out and the remaining weights are
// renormalized, so the combined score always stays in [0, 1].
package ensemble

import (
	"regexp"
	"strings"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

// phraseSet holds the indicative phrases for one guideline. Trigram hits
// weigh 1.5x a bigram hit.
type phraseSet struct {
	bigrams  []string
	trigrams []string
}

var guidelineNGrams = map[sead4.GuidelineCode]phraseSet{
	"A": {
		bigrams: []string{"foreign allegiance", "divided loyalty", "foreign country",
			"foreign government", "preference for"},
		trigrams: []string{"allegiance to united", "loyalty to foreign", "divided loyalty between"},
	},
	"B": {
		bigrams: []string{"foreign contact", "foreign influence", "foreign national",
			"foreign travel", "foreign business", "foreign property"},
		trigrams: []string{"contact with foreign", "foreign influence concern", "foreign family members"},
	},
	"C": {
		bigrams: []string{"foreign preference", "foreign passport", "dual citizenship",
			"foreign military", "foreign benefit"},
		trigrams: []string{"acting to acquire", "preference for foreign", "foreign citizenship actively"},
	},
	"D": {
		bigrams: []string{"sexual behavior", "sexual conduct", "sexual activity",
			"coercion exploitation", "personal conduct"},
		trigrams: []string{"sexual behavior causing", "vulnerability to coercion", "sexual conduct reflects"},
	},
	"E": {
		bigrams: []string{"personal conduct", "lack candor", "deliberately provided",
			"false statement", "misleading information", "failure comply",
			"concealed information", "dishonest conduct"},
		trigrams: []string{"deliberately providing false", "failure to comply", "lack of candor",
			"concealment of information", "dishonest or illegal"},
	},
	"F": {
		bigrams: []string{"financial considerations", "financial difficulty", "delinquent debt",
			"bankruptcy filed", "foreclosure proceedings", "financial irresponsibility",
			"inability to satisfy", "tax lien", "credit report", "unpaid debt",
			"financial problems", "overdue accounts", "collection account",
			"charged off", "past due", "owed money", "outstanding debt",
			"failed to pay", "debts owed", "financial issues", "credit card",
			"medical debt", "student loan", "delinquent accounts", "credit history",
			"financial record", "financial situation", "debts totaling"},
		trigrams: []string{"history of financial", "unable to satisfy", "financial problems resulted",
			"delinquent debt totaling", "filed for bankruptcy", "failure to pay",
			"history of not", "unwilling to satisfy", "unable or unwilling",
			"debts listed on", "alleged in sor", "financial considerations concern"},
	},
	"G": {
		bigrams: []string{"alcohol consumption", "alcohol use", "driving under",
			"alcohol related", "binge drinking", "dui arrest", "dwi",
			"alcohol incident", "alcohol disorder", "alcohol treatment"},
		trigrams: []string{"alcohol use disorder", "driving under influence",
			"habitual alcohol consumption", "alcohol related incident",
			"diagnosis of alcohol", "treatment for alcohol"},
	},
	"H": {
		bigrams: []string{"drug involvement", "substance misuse", "illegal drug",
			"drug use", "controlled substance", "drug possession",
			"drug testing", "positive test"},
		trigrams: []string{"illegal drug use", "use of illegal", "drug abuse violation",
			"testing positive for", "possession of controlled"},
	},
	"I": {
		bigrams: []string{"psychological condition", "mental health", "psychiatric evaluation",
			"mental disorder", "emotional instability", "psychological evaluation",
			"mental health professional", "diagnosis of"},
		trigrams: []string{"opinion by qualified", "mental health professional",
			"psychological or psychiatric", "condition may impair",
			"diagnosis by mental"},
	},
	"J": {
		bigrams: []string{"criminal conduct", "criminal activity", "criminal offense",
			"arrest for", "convicted of", "criminal charge", "pattern of",
			"illegal activity", "criminal history"},
		trigrams: []string{"pattern of criminal", "criminal or dishonest",
			"single serious crime", "evidence of criminal",
			"history of criminal"},
	},
	"K": {
		bigrams: []string{"handling protected", "protected information", "security violation",
			"classified information", "unauthorized disclosure", "security procedures",
			"mishandling of", "security rules"},
		trigrams: []string{"disclosure of protected", "failure to comply",
			"handling of protected", "violation of security",
			"unauthorized access to"},
	},
	"L": {
		bigrams: []string{"outside activities", "conflict of interest", "employment with",
			"foreign employment", "outside employment", "business interest"},
		trigrams: []string{"employment with foreign", "outside activity poses",
			"conflict of interest"},
	},
	"M": {
		bigrams: []string{"information technology", "unauthorized access", "computer systems",
			"misuse of", "cyber security", "it systems"},
		trigrams: []string{"misuse of information", "unauthorized access to",
			"information technology systems"},
	},
}

// contextIndicators are the words that must co-occur with a guideline phrase
// inside one sentence for the contextual signal. Only the six high-volume
// guidelines carry indicator sets; the rest score zero on this signal.
var contextIndicators = map[sead4.GuidelineCode][]string{
	"G": {"disorder", "incident", "treatment", "consumption", "rehabilitation",
		"diagnosis", "abuse", "dependence", "arrest", "conviction"},
	"E": {"conduct", "disclosure", "statement", "violation", "omission",
		"falsification", "dishonest", "misleading", "concealment"},
	"F": {"debt", "bankruptcy", "foreclosure", "delinquent", "financial",
		"payment", "credit", "lien", "judgment", "defaulted", "owed", "unpaid",
		"collection", "account", "creditor", "charged", "overdue", "resolved",
		"alleged", "sor", "totaling", "owing", "admitted", "denied"},
	"J": {"conduct", "conviction", "arrest", "offense", "charge", "crime",
		"illegal", "violation", "sentenced", "probation"},
	"I": {"disorder", "condition", "diagnosis", "treatment", "impairment",
		"evaluation", "professional", "psychiatric", "psychological"},
	"H": {"drug", "substance", "marijuana", "cocaine", "heroin", "prescription",
		"illegal", "controlled", "abuse", "misuse", "positive", "test"},
}

var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

// ngramScore counts phrase hits, trigrams weighted 1.5x, normalized against
// half the phrase-set size and capped at 1.
func ngramScore(docLower string, code sead4.GuidelineCode) float64 {
	phrases := guidelineNGrams[code]
	total := len(phrases.bigrams) + len(phrases.trigrams)
	if total == 0 {
		return 0
	}

	matches := 0.0
	for _, bigram := range phrases.bigrams {
		if strings.Contains(docLower, bigram) {
			matches++
		}
	}
	for _, trigram := range phrases.trigrams {
		if strings.Contains(docLower, trigram) {
			matches += 1.5
		}
	}

	return min(1.0, matches/(float64(total)*0.5))
}

// contextualScore counts sentences containing both a guideline phrase and a
// context indicator, normalized against 2% of the sentence count.
func contextualScore(text string, code sead4.GuidelineCode) float64 {
	contextWords, ok := contextIndicators[code]
	if !ok {
		return 0
	}

	sentences := sentenceSplit.Split(text, -1)
	phrases := guidelineNGrams[code]
	keywords := append(append([]string{}, phrases.bigrams...), phrases.trigrams...)

	matches := 0
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if containsAny(lower, keywords) && containsAny(lower, contextWords) {
			matches++
		}
	}

	return min(1.0, float64(matches)/max(1.0, float64(len(sentences))*0.02))
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
