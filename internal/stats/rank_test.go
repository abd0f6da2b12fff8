package stats

import "testing"

func districtRecord(districtID uint, p *float64, exception string) districtRow {
	r := row(2024, ref(1, "ELA"), nil, nil, p, exception)
	r.districtID = districtID
	return r
}

func TestRankDistricts_HighestValueIsRankOne(t *testing.T) {
	records := []districtRow{
		districtRecord(1, pct(40), ""),
		districtRecord(2, pct(75), ""),
		districtRecord(3, pct(60), ""),
	}

	got := RankDistricts(records, 2)
	if got.Rank == nil || *got.Rank != 1 {
		t.Errorf("rank = %v, want 1", got.Rank)
	}
	if got.Total != 3 {
		t.Errorf("total = %d, want 3", got.Total)
	}

	got = RankDistricts(records, 1)
	if got.Rank == nil || *got.Rank != 3 {
		t.Errorf("rank = %v, want 3", got.Rank)
	}
}

func TestRankDistricts_TiesShareRank(t *testing.T) {
	records := []districtRow{
		districtRecord(1, pct(80), ""),
		districtRecord(2, pct(80), ""),
		districtRecord(3, pct(50), ""),
	}

	for _, id := range []uint{1, 2} {
		got := RankDistricts(records, id)
		if got.Rank == nil || *got.Rank != 1 {
			t.Errorf("district %d rank = %v, want shared rank 1", id, got.Rank)
		}
	}

	// the district after a two-way tie jumps to rank 3
	got := RankDistricts(records, 3)
	if got.Rank == nil || *got.Rank != 3 {
		t.Errorf("rank after tie = %v, want 3", got.Rank)
	}
}

func TestRankDistricts_ClampExceptionsCountAsUsable(t *testing.T) {
	records := []districtRow{
		districtRecord(1, nil, ExceptionOver90),
		districtRecord(2, pct(85), ""),
		districtRecord(3, nil, ExceptionUnder10),
	}

	got := RankDistricts(records, 2)
	if got.Total != 3 {
		t.Errorf("total = %d, want 3", got.Total)
	}
	if got.Rank == nil || *got.Rank != 2 {
		t.Errorf("rank = %v, want 2 (behind the over-90 district)", got.Rank)
	}
}

func TestRankDistricts_TargetWithoutUsableDataGetsNilRank(t *testing.T) {
	records := []districtRow{
		districtRecord(1, pct(70), ""),
		districtRecord(2, nil, ""), // null percentage, no exception
		districtRecord(3, pct(55), ""),
		districtRecord(4, nil, ExceptionTooFewSamples),
	}

	got := RankDistricts(records, 2)
	if got.Rank != nil {
		t.Errorf("rank = %d, want nil", *got.Rank)
	}
	if got.Total != 2 {
		t.Errorf("total = %d, want 2 usable districts", got.Total)
	}
}

func TestRankDistricts_AbsentTargetGetsNilRank(t *testing.T) {
	records := []districtRow{
		districtRecord(1, pct(70), ""),
	}
	got := RankDistricts(records, 99)
	if got.Rank != nil || got.Total != 1 {
		t.Errorf("got %+v, want nil rank and total 1", got)
	}
}
