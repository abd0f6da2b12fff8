package ingest

import "strings"

// buildQuestions assembles one canonical question per usable data row. Rows
// with a blank question_text are skipped without error; the batch order index
// advances only when a question is emitted, so indexes stay contiguous.
func buildQuestions(rows [][]string, columns map[string]int) []Question {
	questions := make([]Question, 0, len(rows))
	orderIndex := 0

	for _, row := range rows {
		text := cellAt(row, columns, colQuestionText)
		if text == "" {
			continue
		}

		optionsText := cleanOptionsText(cellAt(row, columns, colOptions))
		chartType := cellAt(row, columns, colChartType)
		typeID := InferTypeID(optionsText, chartType)

		q := Question{
			Title:         text,
			Description:   synthesizeDescription(row, columns),
			IsRequired:    true,
			OrderIndex:    orderIndex,
			TypeID:        typeID,
			AllowMultiple: typeID == TypeMultipleChoice,
			Options:       buildOptions(optionsText),
		}
		questions = append(questions, q)
		orderIndex++
	}
	return questions
}

func buildOptions(optionsText string) []Option {
	parts := splitOptions(optionsText)
	options := make([]Option, len(parts))
	for i, part := range parts {
		options[i] = Option{
			Text:          part,
			OrderIndex:    i,
			IsOtherOption: strings.Contains(strings.ToLower(part), "other"),
		}
	}
	return options
}

// cleanOptionsText undoes the sheet-export artifacts in an options cell:
// one wrapping pair of literal double quotes, the two-character sequence \n
// standing in for a newline, and one doubled double-quote.
func cleanOptionsText(text string) string {
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.Replace(text, `""`, `"`, 1)
	return text
}

// synthesizeDescription joins the informational fields of a row into a
// single " | "-separated line, keeping only the fields that are present.
func synthesizeDescription(row []string, columns map[string]int) string {
	var parts []string
	for _, f := range []struct {
		label  string
		column string
	}{
		{"ID", colQuestionID},
		{"Topic", colTopic},
		{"Segment", colSegments},
		{"Chart Type", colChartType},
	} {
		if v := cellAt(row, columns, f.column); v != "" {
			parts = append(parts, f.label+": "+v)
		}
	}
	return strings.Join(parts, " | ")
}

// cellAt returns the row's value for a mapped canonical column, or "" when
// the column is unmapped or the row is short.
func cellAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
