package ingest

import (
	"errors"
	"testing"
)

func TestParseJSON_SingleObjectCoercedToBatch(t *testing.T) {
	qs, err := ParseJSON(`{"title": "Q", "type_id": 1}`)
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.OrderIndex != 0 {
		t.Errorf("order_index = %d, want 0", q.OrderIndex)
	}
	if q.IsRequired {
		t.Error("is_required should default to false")
	}
	if q.AllowMultiple {
		t.Error("allow_multiple should default to false")
	}
	if q.Description != "" {
		t.Errorf("description = %q, want empty", q.Description)
	}
	if q.SectionID != nil {
		t.Errorf("section_id = %v, want nil", *q.SectionID)
	}
	if len(q.Options) != 0 {
		t.Errorf("options = %v, want empty", q.Options)
	}
}

func TestParseJSON_ArrayDefaultsOrderIndexFromPosition(t *testing.T) {
	qs, err := ParseJSON(`[
		{"title": "A", "type_id": 3},
		{"title": "B", "type_id": 4, "order_index": 9}
	]`)
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if qs[0].OrderIndex != 0 {
		t.Errorf("first order_index = %d, want 0", qs[0].OrderIndex)
	}
	if qs[1].OrderIndex != 9 {
		t.Errorf("explicit order_index = %d, want 9", qs[1].OrderIndex)
	}
}

func TestParseJSON_OptionDefaults(t *testing.T) {
	qs, err := ParseJSON(`{"title": "Q", "type_id": 3, "options": [
		{"text": "Agree", "score": 2},
		{},
		{"text": "Other"}
	]}`)
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	opts := qs[0].Options
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if opts[0].Score == nil || *opts[0].Score != 2 {
		t.Errorf("score = %v, want 2", opts[0].Score)
	}
	if opts[1].Text != "" || opts[1].OrderIndex != 1 || opts[1].IsOtherOption || opts[1].Score != nil {
		t.Errorf("empty option not defaulted: %+v", opts[1])
	}
	if opts[2].OrderIndex != 2 {
		t.Errorf("option order_index = %d, want 2", opts[2].OrderIndex)
	}
}

func TestParseJSON_ZeroScoreBecomesNull(t *testing.T) {
	qs, err := ParseJSON(`{"title": "Q", "type_id": 3, "options": [{"text": "None", "score": 0}]}`)
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if qs[0].Options[0].Score != nil {
		t.Errorf("zero score = %v, want nil", *qs[0].Options[0].Score)
	}
}

func TestParseJSON_InvalidInput(t *testing.T) {
	if _, err := ParseJSON("{not json"); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
	for _, raw := range []string{`"just a string"`, `42`, `null`, `true`} {
		if _, err := ParseJSON(raw); !errors.Is(err, ErrBadShape) {
			t.Errorf("ParseJSON(%s): expected ErrBadShape, got %v", raw, err)
		}
	}
}

func TestParseJSON_ValidationErrorsNameIndexAndField(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantIndex int
		wantField string
	}{
		{"missing title", `[{"title": "ok", "type_id": 1}, {"type_id": 1}]`, 1, "title"},
		{"empty title", `[{"title": "", "type_id": 1}]`, 0, "title"},
		{"string type_id", `[{"title": "Q", "type_id": "3"}]`, 0, "type_id"},
		{"missing type_id", `[{"title": "Q"}]`, 0, "type_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(tt.raw)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Index != tt.wantIndex || verr.Field != tt.wantField {
				t.Errorf("got index %d field %q, want index %d field %q",
					verr.Index, verr.Field, tt.wantIndex, tt.wantField)
			}
		})
	}
}

func TestParseJSON_BatchFailsAtomically(t *testing.T) {
	qs, err := ParseJSON(`[{"title": "A", "type_id": 1}, {"title": "", "type_id": 1}]`)
	if err == nil {
		t.Fatal("expected error")
	}
	if qs != nil {
		t.Errorf("expected no partial result, got %v", qs)
	}
}
