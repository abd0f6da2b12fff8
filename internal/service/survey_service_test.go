package service

import (
	"testing"

	"schoolscope_backend/internal/ingest"
)

func TestToModelQuestionOffsetsOrder(t *testing.T) {
	section := "s1"
	score := 2.0
	q := ingest.Question{
		Title:         "How safe do you feel at school?",
		Description:   "ID: Q1 | Topic: Safety",
		IsRequired:    true,
		OrderIndex:    3,
		TypeID:        ingest.TypeSingleChoice,
		SectionID:     &section,
		AllowMultiple: false,
		Options: []ingest.Option{
			{Text: "Very safe", OrderIndex: 0, Score: &score},
			{Text: "Other", OrderIndex: 1, IsOtherOption: true},
		},
	}

	got := toModelQuestion(42, q, 10)

	if got.SurveyID != 42 {
		t.Errorf("SurveyID = %d, want 42", got.SurveyID)
	}
	if got.OrderIndex != 13 {
		t.Errorf("OrderIndex = %d, want 13", got.OrderIndex)
	}
	if got.Title != q.Title || got.Description != q.Description {
		t.Errorf("title/description not carried over: %q %q", got.Title, got.Description)
	}
	if !got.IsRequired || got.TypeID != ingest.TypeSingleChoice {
		t.Errorf("IsRequired/TypeID = %v/%d", got.IsRequired, got.TypeID)
	}
	if got.SectionID == nil || *got.SectionID != "s1" {
		t.Errorf("SectionID = %v, want s1", got.SectionID)
	}
	if len(got.Options) != 2 {
		t.Fatalf("len(Options) = %d, want 2", len(got.Options))
	}
	if got.Options[0].Score == nil || *got.Options[0].Score != 2.0 {
		t.Errorf("option 0 score = %v, want 2", got.Options[0].Score)
	}
	if !got.Options[1].IsOtherOption {
		t.Errorf("option 1 should keep its other flag")
	}
}

func TestToModelQuestionZeroOffset(t *testing.T) {
	q := ingest.Question{Title: "t", OrderIndex: 0, TypeID: ingest.TypeShortText}
	got := toModelQuestion(1, q, 0)
	if got.OrderIndex != 0 {
		t.Errorf("OrderIndex = %d, want 0", got.OrderIndex)
	}
	if got.Options == nil || len(got.Options) != 0 {
		t.Errorf("Options = %v, want empty non-nil slice", got.Options)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"questions.csv", "questions.csv"},
		{"../etc/passwd", ".._etc_passwd"},
		{"a\\b.json", "a_b.json"},
		{"", "upload"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := contentTypeFor("json"); got != "application/json" {
		t.Errorf("contentTypeFor(json) = %q", got)
	}
	if got := contentTypeFor("csv"); got != "text/csv" {
		t.Errorf("contentTypeFor(csv) = %q", got)
	}
}
