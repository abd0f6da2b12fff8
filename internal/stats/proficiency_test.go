package stats

import "testing"

func TestNormalizeProficiency(t *testing.T) {
	tests := []struct {
		name      string
		pct       *float64
		exception string
		want      int
	}{
		{"under 10 clamp", nil, ExceptionUnder10, 9},
		{"over 90 clamp", nil, ExceptionOver90, 91},
		{"exception wins over percentage", pct(55), ExceptionUnder10, 9},
		{"rounds down", pct(47.4), "", 47},
		{"rounds up", pct(47.5), "", 48},
		{"exact integer", pct(60), "", 60},
		{"no data", nil, "", NoData},
		{"too-few-samples has no scale value", nil, ExceptionTooFewSamples, NoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeProficiency(tt.pct, tt.exception); got != tt.want {
				t.Errorf("NormalizeProficiency(%v, %q) = %d, want %d", tt.pct, tt.exception, got, tt.want)
			}
		})
	}
}

func TestHasUsableProficiency(t *testing.T) {
	if !HasUsableProficiency(pct(50), "") {
		t.Error("numeric percentage should be usable")
	}
	if !HasUsableProficiency(nil, ExceptionUnder10) || !HasUsableProficiency(nil, ExceptionOver90) {
		t.Error("clamp exceptions should be usable")
	}
	if HasUsableProficiency(nil, ExceptionTooFewSamples) {
		t.Error("too-few-samples alone is not usable")
	}
	if HasUsableProficiency(nil, "") {
		t.Error("empty record is not usable")
	}
}
