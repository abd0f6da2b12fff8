package stats

// DistrictRank is a district's 1-based standing among peers with usable
// proficiency data. Rank is nil when the target district has no usable data
// of its own; Total always counts the usable peer set.
type DistrictRank struct {
	Rank  *int `json:"rank"`
	Total int  `json:"total"`
}

// RankDistricts ranks one district against peer district measurements by
// normalized proficiency, descending. Rank 1 is the single highest value;
// tied districts share a rank (strict-greater counting), so the value after
// a tie jumps.
func RankDistricts[T DistrictRecord](records []T, targetDistrictID uint) DistrictRank {
	usable := make([]T, 0, len(records))
	for _, record := range records {
		f := record.StatFields()
		if HasUsableProficiency(f.AboveProficientPct, f.Exception) {
			usable = append(usable, record)
		}
	}

	result := DistrictRank{Total: len(usable)}

	target := NoData
	found := false
	for _, record := range usable {
		if record.DistrictKey() == targetDistrictID {
			f := record.StatFields()
			target = NormalizeProficiency(f.AboveProficientPct, f.Exception)
			found = true
			break
		}
	}
	if !found || target == NoData {
		return result
	}

	rank := 1
	for _, record := range usable {
		if record.DistrictKey() == targetDistrictID {
			continue
		}
		f := record.StatFields()
		if NormalizeProficiency(f.AboveProficientPct, f.Exception) > target {
			rank++
		}
	}
	result.Rank = &rank
	return result
}
