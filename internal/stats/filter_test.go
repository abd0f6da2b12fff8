package stats

import (
	"reflect"
	"testing"
)

func testRecords() []districtRow {
	return []districtRow{
		row(2024, ref(1, "ELA"), ref(10, "All Students"), ref(5, "Grade 5"), pct(52.3), ""),
		row(2024, ref(2, "Math"), ref(10, "All Students"), nil, pct(47.0), ""),
		row(2023, ref(1, "ELA"), ref(11, "Economically Disadvantaged"), ref(5, "Grade 5"), nil, ExceptionTooFewSamples),
		row(2024, ref(1, "ELA"), nil, ref(6, "Grade 6"), pct(61.8), ""),
		row(2024, nil, ref(10, "All Students"), nil, nil, ExceptionUnder10),
	}
}

func TestFilter_ByYear(t *testing.T) {
	got := Filter(testRecords(), Criteria{Year: intp(2023)})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].fields.Subgroup.ID != 11 {
		t.Errorf("wrong record: %+v", got[0].fields)
	}
}

func TestFilter_SubjectExcludesRecordsWithoutSubject(t *testing.T) {
	got := Filter(testRecords(), Criteria{SubjectID: intp(1)})
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for _, r := range got {
		if r.fields.Subject == nil || r.fields.Subject.ID != 1 {
			t.Errorf("record without subject 1 passed: %+v", r.fields)
		}
	}
}

func TestFilter_AllGradesSentinelMatchesOnlyAbsentGrade(t *testing.T) {
	got := Filter(testRecords(), Criteria{GradeID: intp(AllGradesID)})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for _, r := range got {
		if r.fields.Grade != nil {
			t.Errorf("record with a grade passed the all-grades filter: %+v", r.fields)
		}
	}
}

func TestFilter_SpecificGrade(t *testing.T) {
	got := Filter(testRecords(), Criteria{GradeID: intp(6)})
	if len(got) != 1 || got[0].fields.Grade.ID != 6 {
		t.Fatalf("expected the single grade-6 record, got %v", got)
	}
}

func TestFilter_CombinedCriteriaPreserveOrder(t *testing.T) {
	records := testRecords()
	got := Filter(records, Criteria{Year: intp(2024), SubjectID: intp(1)})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].fields.Grade.ID != 5 || got[1].fields.Grade.ID != 6 {
		t.Errorf("relative order not preserved: %+v", got)
	}
}

func TestFilter_NoCriteriaReturnsAll(t *testing.T) {
	records := testRecords()
	got := Filter(records, Criteria{})
	if len(got) != len(records) {
		t.Errorf("expected all %d records, got %d", len(records), len(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := testRecords()
	c := Criteria{Year: intp(2024), SubgroupID: intp(10)}
	first := Filter(records, c)
	second := Filter(records, c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\nfirst  %+v\nsecond %+v", first, second)
	}
}
