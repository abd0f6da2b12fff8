package ingest

import "strings"

// Keyword groups that mark an options list as a rating scale. Matched as
// substrings of individual lower-cased options.
var (
	likertKeywords    = []string{"agree", "disagree", "strongly", "somewhat", "neither"}
	frequencyKeywords = []string{"daily", "weekly", "monthly", "never", "times a", "frequently", "often"}
)

// InferTypeID classifies a question from its raw options text and the chart
// type hinted by the source sheet. The decision order is a heuristic
// tie-break that existing imported data sets depend on; first match wins:
//
//  1. no options text            -> short text
//  2. likert keyword present     -> single choice
//  3. frequency keyword present  -> single choice
//  4. pie hint                   -> single choice
//  5. horizontal bar hint        -> multiple choice
//  6. bar hint                   -> dropdown when >6 options, else single choice
//  7. no hint                    -> dropdown when >7, single choice 2-7, short text otherwise
func InferTypeID(optionsText, chartType string) int {
	if strings.TrimSpace(optionsText) == "" {
		return TypeShortText
	}

	options := splitOptions(optionsText)
	lowered := make([]string, len(options))
	for i, opt := range options {
		lowered[i] = strings.ToLower(opt)
	}

	if containsAny(lowered, likertKeywords) || containsAny(lowered, frequencyKeywords) {
		return TypeSingleChoice
	}

	switch normalizeChartType(chartType) {
	case "pie":
		return TypeSingleChoice
	case "horizontalbar":
		return TypeMultipleChoice
	case "bar", "verticalbar":
		if len(options) > 6 {
			return TypeDropdown
		}
		return TypeSingleChoice
	}

	switch {
	case len(options) > 7:
		return TypeDropdown
	case len(options) >= 2:
		return TypeSingleChoice
	default:
		return TypeShortText
	}
}

// splitOptions breaks an options blob on commas or newlines into trimmed,
// non-empty entries.
func splitOptions(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			options = append(options, part)
		}
	}
	return options
}

func containsAny(options, keywords []string) bool {
	for _, opt := range options {
		for _, kw := range keywords {
			if strings.Contains(opt, kw) {
				return true
			}
		}
	}
	return false
}

// normalizeChartType folds case, spaces, hyphens and underscores so that
// "Horizontal Bar", "horizontal-bar" and "horizontal_bar" hint alike.
func normalizeChartType(hint string) string {
	hint = strings.ToLower(strings.TrimSpace(hint))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, hint)
}
