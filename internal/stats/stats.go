// Package stats holds the pure query helpers over yearly assessment
// measurement records: filtering, facet extraction, proficiency
// normalization and district ranking. Functions here mutate nothing and
// depend on no ambient state; callers hand in fully loaded record slices.
package stats

// Suppression exception codes a measurement may carry instead of a numeric
// percentage. The literals match the upstream state data files.
const (
	ExceptionTooFewSamples = "too few samples"
	ExceptionUnder10       = "under 10%"
	ExceptionOver90        = "over 90%"
)

// AllGradesID is the reserved grade id meaning "no specific grade /
// aggregate across grades". Records with no grade at all belong to it.
const AllGradesID = -1

// AllGradesName labels the synthetic all-grades facet.
const AllGradesName = "All Grades"

// Ref is an id+name reference to a subject, subgroup or grade.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Fields is the measurement field-set shared by the district, state and
// school record variants.
type Fields struct {
	Year               int
	Subject            *Ref
	Subgroup           *Ref
	Grade              *Ref
	AboveProficientPct *float64
	// Exception is one of the suppression codes above, or "" when the
	// percentage is reported directly.
	Exception string
}

// Record is the capability contract every measurement variant satisfies.
type Record interface {
	StatFields() Fields
}

// DistrictRecord additionally identifies the district a measurement
// belongs to, for peer ranking.
type DistrictRecord interface {
	Record
	DistrictKey() uint
}
