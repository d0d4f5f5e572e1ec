package assessment

import (
	"math"
	"reflect"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

func TestComputeStats(t *testing.T) {
	precedents := []sead4.Precedent{
		{CaseNumber: "20-00001", Outcome: sead4.OutcomeDenied, Guidelines: []sead4.GuidelineCode{"F", "E"}, RelevanceScore: 0.9},
		{CaseNumber: "20-00002", Outcome: sead4.OutcomeRevoked, Guidelines: []sead4.GuidelineCode{"F"}, RelevanceScore: 0.7},
		{CaseNumber: "20-00003", Outcome: sead4.OutcomeGranted, Guidelines: []sead4.GuidelineCode{"F", "G"}, RelevanceScore: 0.8},
		{CaseNumber: "20-00004", Outcome: sead4.OutcomeDenied, Guidelines: []sead4.GuidelineCode{"J"}},
	}

	got := ComputeStats(precedents)
	if got == nil {
		t.Fatal("ComputeStats() = nil")
	}

	if got.Total != 4 {
		t.Errorf("Total = %d, want 4", got.Total)
	}
	if math.Abs(got.DeniedPercentage-0.75) > 1e-9 {
		t.Errorf("DeniedPercentage = %v, want 0.75", got.DeniedPercentage)
	}
	if math.Abs(got.GrantedPercentage-0.25) > 1e-9 {
		t.Errorf("GrantedPercentage = %v, want 0.25", got.GrantedPercentage)
	}
	if got.MostCommonOutcome != sead4.OutcomeDenied {
		t.Errorf("MostCommonOutcome = %s, want DENIED", got.MostCommonOutcome)
	}

	// Missing relevance defaults to 0.5: (0.9+0.7+0.8+0.5)/4.
	if math.Abs(got.AvgRelevance-0.725) > 1e-9 {
		t.Errorf("AvgRelevance = %v, want 0.725", got.AvgRelevance)
	}

	wantGuidelines := []sead4.GuidelineFrequency{
		{Code: "F", Count: 3},
		{Code: "E", Count: 1},
		{Code: "G", Count: 1},
	}
	if !reflect.DeepEqual(got.CommonGuidelines, wantGuidelines) {
		t.Errorf("CommonGuidelines = %v, want %v", got.CommonGuidelines, wantGuidelines)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	if got := ComputeStats(nil); got != nil {
		t.Errorf("ComputeStats(nil) = %v, want nil", got)
	}
}

func TestComputeStats_TieBrokenByFirstSeen(t *testing.T) {
	precedents := []sead4.Precedent{
		{Outcome: sead4.OutcomeGranted},
		{Outcome: sead4.OutcomeDenied},
	}
	got := ComputeStats(precedents)
	if got.MostCommonOutcome != sead4.OutcomeGranted {
		t.Errorf("MostCommonOutcome = %s, want GRANTED", got.MostCommonOutcome)
	}
}
