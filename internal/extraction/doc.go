// Package extraction pulls structured facts out of DOHA decision documents
// using regex pattern matching.
//
// The package supports:
//   - Hearing outcome classification over the decision's tail window
//   - Appeal outcome resolution from Appeal Board order language
//   - Adjudicative guideline citation extraction (codes A-M)
//   - Formal findings parsing across the common section layouts
//   - Metadata extraction: decision date, judge, summary, SOR allegations
//
// # Architecture
//
// The main components are:
//   - OutcomeClassifier: rightmost-match outcome detection for hearing decisions
//   - AppealResolver: order action and underlying-disposition resolution
//   - GuidelineExtractor: guideline letter citations in document order
//   - FormalFindingsExtractor: per-guideline findings with subparagraph detail
//   - MetadataExtractor: dates, judges, summaries and allegations
//
// # Usage
//
// Classify a hearing decision:
//
//	classifier := extraction.NewOutcomeClassifier()
//	outcome := classifier.Classify(text)
//
// Resolve an appeal decision:
//
//	resolver := extraction.NewAppealResolver()
//	if resolver.IsAppeal(text) {
//	    outcome = resolver.Resolve(text)
//	}
//
// All extractors are stateless after construction and safe for concurrent
// use.
package extraction
