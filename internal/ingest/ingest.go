// Package ingest converts externally authored survey questions (delimited
// text tables or JSON documents) into the canonical question shape used by
// the survey module. All entry points are pure: they take fully materialized
// input, perform no I/O, and report every expected failure as a returned
// error rather than a panic.
package ingest

// Question input-type classifications. The set is closed; TypeID values are
// persisted, so existing imported data depends on this numbering.
const (
	TypeShortText      = 1
	TypeLongText       = 2
	TypeSingleChoice   = 3
	TypeMultipleChoice = 4
	TypeDropdown       = 5
	TypeScale          = 6
	TypeDate           = 7
	TypeFileUpload     = 8
	TypeMatrix         = 9
	TypeRanking        = 10
)

// Question is the canonical ingestion output, independent of source format.
type Question struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	IsRequired    bool     `json:"is_required"`
	OrderIndex    int      `json:"order_index"`
	TypeID        int      `json:"type_id"`
	SectionID     *string  `json:"section_id"`
	AllowMultiple bool     `json:"allow_multiple"`
	Options       []Option `json:"options"`
}

// Option is one answer choice of a canonical question.
type Option struct {
	Text          string   `json:"text"`
	OrderIndex    int      `json:"order_index"`
	IsOtherOption bool     `json:"is_other_option"`
	Score         *float64 `json:"score"`
}
