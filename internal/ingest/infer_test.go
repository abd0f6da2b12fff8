package ingest

import "testing"

func TestInferTypeID(t *testing.T) {
	tests := []struct {
		name      string
		options   string
		chartType string
		want      int
	}{
		{"empty options short-circuits chart hint", "", "pie", TypeShortText},
		{"likert scale beats bar hint", "Strongly agree,Somewhat agree", "bar", TypeSingleChoice},
		{"likert neither", "Neither agree nor disagree,Somewhat disagree", "", TypeSingleChoice},
		{"frequency keywords", "Daily,Weekly,Monthly,Never", "", TypeSingleChoice},
		{"frequency times a", "2-3 times a week,Once", "", TypeSingleChoice},
		{"pie hint", "Yes,No", "pie", TypeSingleChoice},
		{"horizontal bar hint", "A,B,C", "horizontal bar", TypeMultipleChoice},
		{"horizontal bar hint underscored", "A,B,C", "horizontal_bar", TypeMultipleChoice},
		{"bar with seven options", "A,B,C,D,E,F,G", "bar", TypeDropdown},
		{"bar with eight options", "A,B,C,D,E,F,G,H", "bar", TypeDropdown},
		{"bar with six options", "A,B,C,D,E,F", "bar", TypeSingleChoice},
		{"no hint eight options", "A,B,C,D,E,F,G,H", "", TypeDropdown},
		{"no hint seven options", "A,B,C,D,E,F,G", "", TypeSingleChoice},
		{"no hint two options", "Yes,No", "", TypeSingleChoice},
		{"no hint one option", "Only", "", TypeShortText},
		{"newline separated options", "Yes\nNo\nMaybe", "", TypeSingleChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferTypeID(tt.options, tt.chartType); got != tt.want {
				t.Errorf("InferTypeID(%q, %q) = %d, want %d", tt.options, tt.chartType, got, tt.want)
			}
		})
	}
}

func TestSplitOptions(t *testing.T) {
	got := splitOptions(" Yes , No ,\n ,Maybe\n")
	want := []string{"Yes", "No", "Maybe"}
	if len(got) != len(want) {
		t.Fatalf("splitOptions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d = %q, want %q", i, got[i], want[i])
		}
	}
}
