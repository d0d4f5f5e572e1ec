package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TeneikaAskew/doha-sub000/pkg/analyzer"
)

func TestParseDocType(t *testing.T) {
	tests := []struct {
		input   string
		want    analyzer.DocType
		wantErr bool
	}{
		{input: "auto", want: analyzer.DocTypeAuto},
		{input: "hearing", want: analyzer.DocTypeHearing},
		{input: "appeal", want: analyzer.DocTypeAppeal},
		{input: "pdf", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDocType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDocType(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDocType(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseDocType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestGuidelinesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"guidelines"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 13 {
		t.Errorf("got %d lines, want 13", len(lines))
	}
	if !strings.Contains(out.String(), "Financial Considerations") {
		t.Errorf("output missing Financial Considerations:\n%s", out.String())
	}
}

func TestAnalyzeCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	decision := filepath.Join(t.TempDir(), "20-01234.txt")
	text := "STATEMENT OF THE CASE\n\nGuideline F concerns over delinquent debt.\n\n" +
		"DECISION\n\nEligibility for access to classified information is GRANTED.\n"
	if err := os.WriteFile(decision, []byte(text), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze", "--mode", "native", decision})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result analyzer.Result
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if result.Outcome != "GRANTED" {
		t.Errorf("Outcome = %s, want GRANTED", result.Outcome)
	}
	if result.DocType != analyzer.DocTypeHearing {
		t.Errorf("DocType = %s, want hearing", result.DocType)
	}
	if len(result.Assessments) != 13 {
		t.Errorf("len(Assessments) = %d, want 13", len(result.Assessments))
	}
	if result.Metadata.CaseNumber != "20-01234" {
		t.Errorf("Metadata.CaseNumber = %q, want 20-01234", result.Metadata.CaseNumber)
	}
	if result.Metadata.CaseYear != 2020 {
		t.Errorf("Metadata.CaseYear = %d, want 2020", result.Metadata.CaseYear)
	}
}
