package stats

import "sort"

// Facet is a distinct grade or subgroup observed across a measurement set.
// Disabled marks a facet that only ever occurs with the too-few-samples
// suppression code, i.e. one with no displayable data behind it.
type Facet struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Disabled bool   `json:"disabled"`
}

// Grades extracts the distinct grades present in records. Records without a
// grade are folded into the synthetic all-grades facet rather than dropped.
// The all-grades facet sorts first, the rest by descending numeric id.
func Grades[T Record](records []T) []Facet {
	facets := collect(records, func(f Fields) (Ref, bool) {
		if f.Grade == nil {
			return Ref{ID: AllGradesID, Name: AllGradesName}, true
		}
		return *f.Grade, true
	})
	sort.SliceStable(facets, func(i, j int) bool {
		if facets[i].ID == AllGradesID || facets[j].ID == AllGradesID {
			return facets[i].ID == AllGradesID
		}
		return facets[i].ID > facets[j].ID
	})
	return facets
}

// Subgroups extracts the distinct subgroups present in records, sorted by
// ascending numeric id. Records without a subgroup contribute nothing.
func Subgroups[T Record](records []T) []Facet {
	facets := collect(records, func(f Fields) (Ref, bool) {
		if f.Subgroup == nil {
			return Ref{}, false
		}
		return *f.Subgroup, true
	})
	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].ID < facets[j].ID
	})
	return facets
}

// collect walks the records once, keeping the first-seen ref per id and
// tracking which ids ever appear without the too-few-samples code.
func collect[T Record](records []T, key func(Fields) (Ref, bool)) []Facet {
	seen := make(map[int]Ref)
	var order []int
	suppressed := make(map[int]bool)
	unsuppressed := make(map[int]bool)

	for _, record := range records {
		f := record.StatFields()
		ref, ok := key(f)
		if !ok {
			continue
		}
		if _, dup := seen[ref.ID]; !dup {
			seen[ref.ID] = ref
			order = append(order, ref.ID)
		}
		if f.Exception == ExceptionTooFewSamples {
			suppressed[ref.ID] = true
		} else {
			unsuppressed[ref.ID] = true
		}
	}

	facets := make([]Facet, 0, len(order))
	for _, id := range order {
		ref := seen[id]
		facets = append(facets, Facet{
			ID:       ref.ID,
			Name:     ref.Name,
			Disabled: suppressed[id] && !unsuppressed[id],
		})
	}
	return facets
}
