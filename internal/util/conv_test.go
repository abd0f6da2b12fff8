package util

import "testing"

func TestPageParams(t *testing.T) {
	tests := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 20},
		{"3", "50", 3, 50},
		{"0", "0", 1, 20},
		{"-1", "200", 1, 20},
		{"abc", "xyz", 1, 20},
		{"2", "100", 2, 100},
	}
	for _, tt := range tests {
		page, limit := PageParams(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("PageParams(%q, %q) = (%d, %d), want (%d, %d)",
				tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestQueryInt(t *testing.T) {
	if got := QueryInt(""); got != nil {
		t.Errorf("QueryInt(\"\") = %v, want nil", got)
	}
	if got := QueryInt("x"); got != nil {
		t.Errorf("QueryInt(\"x\") = %v, want nil", got)
	}
	if got := QueryInt("-1"); got == nil || *got != -1 {
		t.Errorf("QueryInt(\"-1\") = %v, want -1", got)
	}
	if got := QueryInt("2024"); got == nil || *got != 2024 {
		t.Errorf("QueryInt(\"2024\") = %v, want 2024", got)
	}
}

func TestHasAllowedExtension(t *testing.T) {
	if !HasAllowedExtension("Questions.CSV", AllowedImportExtensions) {
		t.Errorf("uppercase extension should match")
	}
	if HasAllowedExtension("report.pdf", AllowedImportExtensions) {
		t.Errorf("pdf should not match")
	}
	if !HasAllowedExtension("data.json", AllowedImportExtensions) {
		t.Errorf("json should match")
	}
}
