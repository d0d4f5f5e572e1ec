// Package sead4 defines the domain model for SEAD-4 security-clearance
// adjudication: case outcomes, the 13 adjudicative guidelines (A-M), formal
// findings, per-guideline assessments, and the published reference table of
// guideline concerns, disqualifying conditions, and mitigating conditions.
//
// The reference data in this package is drawn from Security Executive Agent
// Directive 4 (June 8, 2017) and is treated as read-only configuration.
package sead4
