package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// tokenize splits raw delimited text into rows of trimmed cells. Quoting
// follows RFC 4180: a doubled quote inside a quoted cell is a literal quote,
// and separators or newlines inside a quoted cell are literal text, so a
// quoted cell may span lines. Rows left entirely empty after trimming
// (including a trailing blank line) are absorbed.
func tokenize(raw string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		blank := true
		cells := make([]string, len(record))
		for i, cell := range record {
			cells[i] = strings.TrimSpace(cell)
			if cells[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// ParseCSV ingests a delimited-text question table. The first row must be a
// header containing at least the question_id, question_text and
// response_options columns (matched case-insensitively). Rows with a blank
// question_text are skipped silently; a non-empty table yielding zero
// questions is an error.
func ParseCSV(raw string) (questions []Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			questions = nil
			err = fmt.Errorf("error processing CSV input: %v", r)
		}
	}()

	rows, err := tokenize(raw)
	if err != nil {
		return nil, fmt.Errorf("error processing CSV input: %v", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoValidQuestions
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	questions = buildQuestions(rows[1:], columns)
	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return questions, nil
}
