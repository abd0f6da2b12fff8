package stats

import "testing"

func TestGrades_DisablesAlwaysSuppressedFacet(t *testing.T) {
	records := []districtRow{
		row(2024, nil, nil, ref(5, "Grade 5"), nil, ExceptionTooFewSamples),
		row(2023, nil, nil, ref(5, "Grade 5"), nil, ExceptionTooFewSamples),
		row(2024, nil, nil, ref(6, "Grade 6"), pct(44.0), ""),
	}

	facets := Grades(records)
	if len(facets) != 2 {
		t.Fatalf("expected 2 facets, got %d: %v", len(facets), facets)
	}

	byID := map[int]Facet{}
	for _, f := range facets {
		byID[f.ID] = f
	}
	if !byID[5].Disabled {
		t.Error("grade 5 should be disabled: only ever suppressed")
	}
	if byID[6].Disabled {
		t.Error("grade 6 should not be disabled")
	}
}

func TestGrades_MixedSuppressionStaysEnabled(t *testing.T) {
	records := []districtRow{
		row(2024, nil, nil, ref(5, "Grade 5"), nil, ExceptionTooFewSamples),
		row(2023, nil, nil, ref(5, "Grade 5"), pct(31.0), ""),
	}
	facets := Grades(records)
	if facets[0].Disabled {
		t.Error("facet seen unsuppressed once must stay enabled")
	}
}

func TestGrades_AbsentGradeFoldsIntoAllGradesSentinel(t *testing.T) {
	records := []districtRow{
		row(2024, nil, nil, nil, pct(50.0), ""),
		row(2024, nil, nil, ref(3, "Grade 3"), pct(41.0), ""),
		row(2024, nil, nil, ref(8, "Grade 8"), pct(48.0), ""),
	}

	facets := Grades(records)
	if len(facets) != 3 {
		t.Fatalf("expected 3 facets, got %d", len(facets))
	}
	if facets[0].ID != AllGradesID || facets[0].Name != AllGradesName {
		t.Errorf("sentinel should sort first, got %+v", facets[0])
	}
	// remaining grades descend by id
	if facets[1].ID != 8 || facets[2].ID != 3 {
		t.Errorf("grades not sorted descending: %+v", facets)
	}
}

func TestGrades_FirstSeenNameWins(t *testing.T) {
	records := []districtRow{
		row(2024, nil, nil, ref(4, "Grade 4"), pct(10.0), ""),
		row(2023, nil, nil, ref(4, "Grade Four"), pct(12.0), ""),
	}
	facets := Grades(records)
	if len(facets) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(facets))
	}
	if facets[0].Name != "Grade 4" {
		t.Errorf("first-seen name should win, got %q", facets[0].Name)
	}
}

func TestSubgroups_SortedAscendingSkippingAbsent(t *testing.T) {
	records := []districtRow{
		row(2024, nil, ref(12, "Students with Disabilities"), nil, pct(20.0), ""),
		row(2024, nil, nil, nil, pct(50.0), ""),
		row(2024, nil, ref(10, "All Students"), nil, pct(52.0), ""),
		row(2024, nil, ref(11, "English Learners"), nil, nil, ExceptionTooFewSamples),
	}

	facets := Subgroups(records)
	if len(facets) != 3 {
		t.Fatalf("expected 3 facets, got %d", len(facets))
	}
	for i, wantID := range []int{10, 11, 12} {
		if facets[i].ID != wantID {
			t.Errorf("facet %d id = %d, want %d", i, facets[i].ID, wantID)
		}
	}
	if !facets[1].Disabled {
		t.Error("subgroup 11 should be disabled")
	}
}
