package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize_QuotedCells(t *testing.T) {
	raw := "id,text,options\n" +
		"1,\"How often do you read, per week?\",\"Never,Daily\"\n"

	rows, err := tokenize(raw)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"1", "How often do you read, per week?", "Never,Daily"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestTokenize_EscapedQuoteAndMultilineCell(t *testing.T) {
	raw := "a,b\n" +
		"\"say \"\"hi\"\"\",\"line one\nline two\"\n"

	rows, err := tokenize(raw)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if got := rows[1][0]; got != `say "hi"` {
		t.Errorf("cell = %q, want %q", got, `say "hi"`)
	}
	if got := rows[1][1]; got != "line one\nline two" {
		t.Errorf("cell = %q, want %q", got, "line one\nline two")
	}
}

func TestTokenize_TrailingBlankLineAbsorbed(t *testing.T) {
	rows, err := tokenize("a,b\n1,2\n\n")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}
}

func TestTokenize_EmptyCellIsValid(t *testing.T) {
	rows, err := tokenize("a,b,c\n1,,3\n")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if got := rows[1][1]; got != "" {
		t.Errorf("expected empty cell, got %q", got)
	}
	if len(rows[1]) != 3 {
		t.Errorf("expected 3 cells, got %d", len(rows[1]))
	}
}

// Tokenizing, re-writing with quoting, and tokenizing again must reproduce
// the same logical cell values.
func TestTokenize_QuotingRoundTrip(t *testing.T) {
	raw := "h1,h2\n" +
		"\"a, b\",\"he said \"\"no\"\"\"\n" +
		"plain,\"multi\nline\"\n"

	first, err := tokenize(raw)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(first); err != nil {
		t.Fatalf("rewrite error: %v", err)
	}

	second, err := tokenize(buf.String())
	if err != nil {
		t.Fatalf("re-tokenize error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip mismatch:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestParseCSV_MissingRequiredColumns(t *testing.T) {
	_, err := ParseCSV("text,options\nWhat?,Yes\n")
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	want := []string{"question_id", "question_text", "response_options"}
	if !reflect.DeepEqual(missing.Columns, want) {
		t.Errorf("missing columns = %v, want %v", missing.Columns, want)
	}
	if !strings.Contains(err.Error(), "question_id") {
		t.Errorf("error should list question_id, got %q", err.Error())
	}
}

func TestParseCSV_HeaderMatchIsCaseInsensitive(t *testing.T) {
	qs, err := ParseCSV("Question_ID,QUESTION_TEXT,Response_Options\nQ1,What grade?,\"9th,10th\"\n")
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].Title != "What grade?" {
		t.Errorf("title = %q", qs[0].Title)
	}
}

func TestParseCSV_OrderIndexContiguousAcrossSkippedRows(t *testing.T) {
	raw := "question_id,question_text,response_options\n" +
		"Q1,First?,\n" +
		"Q2,,\n" + // blank text, skipped silently
		"Q3,Third?,\n" +
		"Q4,,\n" +
		"Q5,Fifth?,\n"

	qs, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.OrderIndex != i {
			t.Errorf("question %d order_index = %d, want %d", i, q.OrderIndex, i)
		}
	}
	if qs[1].Title != "Third?" {
		t.Errorf("row order not preserved: %q", qs[1].Title)
	}
}

func TestParseCSV_NoValidQuestions(t *testing.T) {
	_, err := ParseCSV("question_id,question_text,response_options\nQ1,,\n")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Errorf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestParseCSV_DescriptionSynthesis(t *testing.T) {
	raw := "question_id,question_text,response_options,chart_type,question_topic_name,report_segments\n" +
		"Q7,How safe do you feel?,\"Safe,Unsafe\",pie,Safety,All Students\n"

	qs, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	want := "ID: Q7 | Topic: Safety | Segment: All Students | Chart Type: pie"
	if qs[0].Description != want {
		t.Errorf("description = %q, want %q", qs[0].Description, want)
	}
	if !qs[0].IsRequired {
		t.Error("delimited-path questions must be required")
	}
}

func TestParseCSV_DescriptionSkipsAbsentFields(t *testing.T) {
	raw := "question_id,question_text,response_options\nQ2,Anything else?,\n"
	qs, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if qs[0].Description != "ID: Q2" {
		t.Errorf("description = %q, want %q", qs[0].Description, "ID: Q2")
	}
}

func TestParseCSV_OptionCleaningAndOtherDetection(t *testing.T) {
	raw := "question_id,question_text,response_options\n" +
		"Q1,Favorite subject?,\"\"\"Math\\nScience\\nOther (explain)\"\"\"\n"

	qs, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	opts := qs[0].Options
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d: %v", len(opts), opts)
	}
	for i, opt := range opts {
		if opt.OrderIndex != i {
			t.Errorf("option %d order_index = %d", i, opt.OrderIndex)
		}
	}
	if opts[0].IsOtherOption || opts[1].IsOtherOption {
		t.Error("non-other options flagged as other")
	}
	if !opts[2].IsOtherOption {
		t.Error("option containing \"Other\" not flagged")
	}
}

func TestCleanOptionsText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wrapping quotes stripped", `"Yes,No"`, "Yes,No"},
		{"literal backslash-n", `Yes\nNo`, "Yes\nNo"},
		{"one doubled quote collapsed", `say ""hi`, `say "hi`},
		{"plain text untouched", "Yes,No", "Yes,No"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanOptionsText(tt.in); got != tt.want {
				t.Errorf("cleanOptionsText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
