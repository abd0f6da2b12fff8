package ingest

import "strings"

// Canonical field names a question table may carry. Only the first three are
// required; the rest enrich the synthesized description.
const (
	colQuestionID     = "question_id"
	colQuestionText   = "question_text"
	colOptions        = "response_options"
	colChartType      = "chart_type"
	colTopic          = "question_topic_name"
	colCombineOptions = "combine_options"
	colSegments       = "report_segments"
)

var canonicalColumns = []string{
	colQuestionID,
	colQuestionText,
	colOptions,
	colChartType,
	colTopic,
	colCombineOptions,
	colSegments,
}

var requiredColumns = []string{colQuestionID, colQuestionText, colOptions}

// mapHeader resolves canonical field names to column positions in the header
// row, comparing case-insensitively. Unmatched optional names are simply
// absent from the result; unmatched required names abort the ingestion with
// one error listing all of them.
func mapHeader(header []string) (map[string]int, error) {
	lowered := make([]string, len(header))
	for i, cell := range header {
		lowered[i] = strings.ToLower(cell)
	}

	columns := make(map[string]int, len(canonicalColumns))
	for _, name := range canonicalColumns {
		for i, cell := range lowered {
			if cell == name {
				columns[name] = i
				break
			}
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return columns, nil
}
