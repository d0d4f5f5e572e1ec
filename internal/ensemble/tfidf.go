package ensemble

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tfidfMaxFeatures caps the vocabulary to the highest-frequency terms.
const tfidfMaxFeatures = 100

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// tfidfSimilarity computes the cosine similarity between two texts over a
// shared 1-to-3-gram vocabulary with smoothed inverse document frequency.
// Returns 0 when either text produces no terms.
func tfidfSimilarity(doc, reference string) float64 {
	docTerms := ngramCounts(doc)
	refTerms := ngramCounts(reference)
	if len(docTerms) == 0 || len(refTerms) == 0 {
		return 0
	}

	vocab := selectVocabulary(docTerms, refTerms)

	docVec := tfidfVector(docTerms, refTerms, vocab)
	refVec := tfidfVector(refTerms, docTerms, vocab)

	return cosine(docVec, refVec)
}

// ngramCounts tokenizes the text and counts its unigrams, bigrams, and
// trigrams.
func ngramCounts(text string) map[string]int {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	counts := make(map[string]int)
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+n], " ")]++
		}
	}
	return counts
}

// selectVocabulary keeps the top terms by combined frequency, ties broken
// alphabetically, capped at tfidfMaxFeatures.
func selectVocabulary(a, b map[string]int) []string {
	combined := make(map[string]int, len(a)+len(b))
	for term, count := range a {
		combined[term] += count
	}
	for term, count := range b {
		combined[term] += count
	}

	terms := make([]string, 0, len(combined))
	for term := range combined {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if combined[terms[i]] != combined[terms[j]] {
			return combined[terms[i]] > combined[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > tfidfMaxFeatures {
		terms = terms[:tfidfMaxFeatures]
	}
	return terms
}

// tfidfVector builds an l2-normalized tf-idf vector over the vocabulary.
// Smoothed idf over the two-document corpus: ln((1+n)/(1+df)) + 1.
func tfidfVector(own, other map[string]int, vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	norm := 0.0

	for i, term := range vocab {
		tf := float64(own[term])
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		vec[i] = tf * idf
		norm += vec[i] * vec[i]
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// cosine computes the dot product of two equal-length vectors. Inputs are
// already l2-normalized.
func cosine(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
