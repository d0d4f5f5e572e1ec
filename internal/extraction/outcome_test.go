package extraction

import (
	"strings"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

func TestOutcomeClassifier_Classify(t *testing.T) {
	c := NewOutcomeClassifier()

	tests := []struct {
		name string
		text string
		want sead4.Outcome
	}{
		{
			name: "granted conclusion",
			text: "DECISION\n\nEligibility for access to classified information is GRANTED.",
			want: sead4.OutcomeGranted,
		},
		{
			name: "denied conclusion",
			text: "It is not clearly consistent with the national interest to grant Applicant a security clearance. Clearance is denied.",
			want: sead4.OutcomeDenied,
		},
		{
			name: "revoked conclusion",
			text: "Applicant's eligibility for access to classified information is revoked.",
			want: sead4.OutcomeRevoked,
		},
		{
			name: "remanded conclusion",
			text: "The case is remanded to the Administrative Judge for further processing.",
			want: sead4.OutcomeRemanded,
		},
		{
			name: "rightmost match wins over earlier restatement",
			text: "The Judge previously concluded that clearance is granted. On reconsideration, eligibility for access to classified information is denied.",
			want: sead4.OutcomeDenied,
		},
		{
			name: "rightmost match wins regardless of outcome order",
			text: "The SOR alleged conduct for which clearance is denied in similar cases. Here, however, clearance is granted.",
			want: sead4.OutcomeGranted,
		},
		{
			name: "no dispositive language",
			text: "The hearing was continued pending receipt of additional exhibits.",
			want: sead4.OutcomeUnknown,
		},
		{
			name: "empty input",
			text: "",
			want: sead4.OutcomeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutcomeClassifier_TailWindow(t *testing.T) {
	c := NewOutcomeClassifier()

	// Dispositive language further than the tail window from the end is not
	// the decision's conclusion and must be ignored.
	text := "clearance is granted. " + strings.Repeat("Procedural history follows. ", 200)
	if len(text) <= outcomeTailWindow {
		t.Fatalf("test text too short: %d", len(text))
	}

	if got := c.Classify(text); got != sead4.OutcomeUnknown {
		t.Errorf("Classify() = %v, want %v", got, sead4.OutcomeUnknown)
	}
}
