package stats

// Criteria narrows a measurement set. Nil fields impose no constraint.
// GradeID set to AllGradesID matches only records with no grade at all.
type Criteria struct {
	Year       *int
	SubjectID  *int
	SubgroupID *int
	GradeID    *int
}

// Filter returns the subsequence of records matching every supplied
// criterion, preserving the original relative order. It is side-effect free
// and idempotent.
func Filter[T Record](records []T, c Criteria) []T {
	matched := make([]T, 0, len(records))
	for _, record := range records {
		if matches(record.StatFields(), c) {
			matched = append(matched, record)
		}
	}
	return matched
}

func matches(f Fields, c Criteria) bool {
	if c.Year != nil && f.Year != *c.Year {
		return false
	}
	if c.SubjectID != nil && (f.Subject == nil || f.Subject.ID != *c.SubjectID) {
		return false
	}
	if c.SubgroupID != nil && (f.Subgroup == nil || f.Subgroup.ID != *c.SubgroupID) {
		return false
	}
	if c.GradeID != nil {
		if *c.GradeID == AllGradesID {
			return f.Grade == nil
		}
		if f.Grade == nil || f.Grade.ID != *c.GradeID {
			return false
		}
	}
	return true
}
