package extraction

import (
	"reflect"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

func TestGuidelineExtractor_Extract(t *testing.T) {
	e := NewGuidelineExtractor()

	tests := []struct {
		name string
		text string
		want []sead4.GuidelineCode
	}{
		{
			name: "formal guideline citation",
			text: "The SOR alleged security concerns under Guideline F.",
			want: []sead4.GuidelineCode{"F"},
		},
		{
			name: "common name",
			text: "Applicant's history of Financial Considerations and Alcohol Consumption concerns.",
			want: []sead4.GuidelineCode{"F", "G"},
		},
		{
			name: "AG paragraph citation",
			text: "Disqualifying condition AG ¶ 19 applies to the delinquent debts.",
			want: []sead4.GuidelineCode{"F"},
		},
		{
			name: "multiple guidelines in fixed order",
			text: "Guideline J allegations were cross-alleged under Guideline E. Drug Involvement was also at issue.",
			want: []sead4.GuidelineCode{"E", "H", "J"},
		},
		{
			name: "no guidelines",
			text: "Procedural rulings on exhibit admissibility.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}
