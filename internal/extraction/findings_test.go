package extraction

import (
	"reflect"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

func TestFormalFindingsExtractor_Extract(t *testing.T) {
	e := NewFormalFindingsExtractor()

	tests := []struct {
		name string
		text string
		want map[sead4.GuidelineCode]sead4.FormalFinding
	}{
		{
			name: "paragraph guideline header with numbered range",
			text: "Paragraph 1, Guideline F: AGAINST APPLICANT\nSubparagraphs 1.a-1.b: Against Applicant",
			want: map[sead4.GuidelineCode]sead4.FormalFinding{
				"F": {
					GuidelineCode: "F",
					GuidelineName: "Financial Considerations",
					Overall:       sead4.FindingAgainst,
					Subparagraphs: []sead4.SubparagraphFinding{
						{ParagraphRef: "1.a-1.b", Finding: sead4.FindingAgainst},
					},
				},
			},
		},
		{
			name: "uppercase guideline header with parenthetical name",
			text: "FORMAL FINDINGS\n\nGUIDELINE E (Personal Conduct): FOR APPLICANT\nSubparagraph 1.a: For Applicant\n\nCONCLUSION\n\nClearance is granted.",
			want: map[sead4.GuidelineCode]sead4.FormalFinding{
				"E": {
					GuidelineCode: "E",
					GuidelineName: "Personal Conduct",
					Overall:       sead4.FindingFor,
					Subparagraphs: []sead4.SubparagraphFinding{
						{ParagraphRef: "1.a", Finding: sead4.FindingFor},
					},
				},
			},
		},
		{
			name: "common name header with bare letter range",
			text: "FORMAL FINDINGS\n\nParagraph 2, Drug Involvement: AGAINST APPLICANT\nSubparagraphs a-c: Against Applicant",
			want: map[sead4.GuidelineCode]sead4.FormalFinding{
				"H": {
					GuidelineCode: "H",
					GuidelineName: "Drug Involvement and Substance Misuse",
					Overall:       sead4.FindingAgainst,
					Subparagraphs: []sead4.SubparagraphFinding{
						{ParagraphRef: "2.a-2.c", Finding: sead4.FindingAgainst},
					},
				},
			},
		},
		{
			name: "concern header",
			text: "FORMAL FINDINGS\n\nFinancial Considerations Concern: FOR APPLICANT\nSubparagraphs 1.a, 1.b: For Applicant",
			want: map[sead4.GuidelineCode]sead4.FormalFinding{
				"F": {
					GuidelineCode: "F",
					GuidelineName: "Financial Considerations",
					Overall:       sead4.FindingFor,
					Subparagraphs: []sead4.SubparagraphFinding{
						{ParagraphRef: "1.a", Finding: sead4.FindingFor},
						{ParagraphRef: "1.b", Finding: sead4.FindingFor},
					},
				},
			},
		},
		{
			name: "mixed directions across guidelines",
			text: "FORMAL FINDINGS\n\nParagraph 1, Guideline G: AGAINST APPLICANT\nSubparagraph 1.a: Against Applicant\n\nParagraph 2, Guideline E: FOR APPLICANT\nSubparagraph 2.a: For Applicant",
			want: map[sead4.GuidelineCode]sead4.FormalFinding{
				"G": {
					GuidelineCode: "G",
					GuidelineName: "Alcohol Consumption",
					Overall:       sead4.FindingAgainst,
					Subparagraphs: []sead4.SubparagraphFinding{
						{ParagraphRef: "1.a", Finding: sead4.FindingAgainst},
					},
				},
				"E": {
					GuidelineCode: "E",
					GuidelineName: "Personal Conduct",
					Overall:       sead4.FindingFor,
					Subparagraphs: []sead4.SubparagraphFinding{
						{ParagraphRef: "2.a", Finding: sead4.FindingFor},
					},
				},
			},
		},
		{
			name: "no findings section",
			text: "DECISION\n\nThe hearing was continued.",
			want: map[sead4.GuidelineCode]sead4.FormalFinding{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormalFindingsExtractor_DedupAcrossPatterns(t *testing.T) {
	e := NewFormalFindingsExtractor()

	// The same subparagraph line matches both the keyworded and the bare
	// numbered-ref patterns; the result carries it once.
	text := "Paragraph 1, Guideline F: AGAINST APPLICANT\nSubparagraph 1.a: Against Applicant"
	got := e.Extract(text)

	subs := got["F"].Subparagraphs
	want := []sead4.SubparagraphFinding{{ParagraphRef: "1.a", Finding: sead4.FindingAgainst}}
	if !reflect.DeepEqual(subs, want) {
		t.Errorf("Subparagraphs = %v, want %v", subs, want)
	}
}

func TestFormalFindingsExtractor_FirstFormatWins(t *testing.T) {
	e := NewFormalFindingsExtractor()

	// A guideline resolved by the paragraph-header format is not overwritten
	// by a later format restating it with the opposite direction.
	text := "FORMAL FINDINGS\n\nParagraph 1, Guideline F: AGAINST APPLICANT\n\nGUIDELINE F (Financial Considerations): FOR APPLICANT"
	got := e.Extract(text)

	if got["F"].Overall != sead4.FindingAgainst {
		t.Errorf("Overall = %v, want %v", got["F"].Overall, sead4.FindingAgainst)
	}
}
