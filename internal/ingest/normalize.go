package ingest

import (
	"encoding/json"
	"fmt"
)

// ParseJSON ingests a structured question document: either a single question
// object or an array of them. The whole batch fails on the first invalid
// element; nothing is returned partially.
func ParseJSON(raw string) (questions []Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			questions = nil
			err = fmt.Errorf("error processing JSON input: %v", r)
		}
	}()

	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, ErrInvalidJSON
	}

	var elements []interface{}
	switch v := parsed.(type) {
	case map[string]interface{}:
		elements = []interface{}{v}
	case []interface{}:
		elements = v
	default:
		return nil, ErrBadShape
	}

	questions = make([]Question, 0, len(elements))
	for i, element := range elements {
		q, err := normalizeQuestion(element, i)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// normalizeQuestion validates one parsed question object and fills its
// optional fields with the documented defaults.
func normalizeQuestion(element interface{}, index int) (Question, error) {
	obj, _ := element.(map[string]interface{})

	title, _ := obj["title"].(string)
	if title == "" {
		return Question{}, &ValidationError{Index: index, Field: "title", Msg: "is required"}
	}

	typeID, ok := obj["type_id"].(float64)
	if !ok {
		return Question{}, &ValidationError{Index: index, Field: "type_id", Msg: "must be a number"}
	}

	q := Question{
		Title:         title,
		Description:   stringOr(obj["description"], ""),
		IsRequired:    boolOr(obj["is_required"], false),
		OrderIndex:    intOr(obj["order_index"], index),
		TypeID:        int(typeID),
		SectionID:     stringPtr(obj["section_id"]),
		AllowMultiple: boolOr(obj["allow_multiple"], false),
		Options:       []Option{},
	}

	if rawOptions, ok := obj["options"].([]interface{}); ok {
		for i, rawOption := range rawOptions {
			q.Options = append(q.Options, normalizeOption(rawOption, i))
		}
	}
	return q, nil
}

func normalizeOption(element interface{}, position int) Option {
	obj, _ := element.(map[string]interface{})
	return Option{
		Text:          stringOr(obj["text"], ""),
		OrderIndex:    intOr(obj["order_index"], position),
		IsOtherOption: boolOr(obj["is_other_option"], false),
		Score:         scoreOr(obj["score"]),
	}
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func stringPtr(v interface{}) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

func boolOr(v interface{}, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}

func intOr(v interface{}, fallback int) int {
	if n, ok := v.(float64); ok {
		return int(n)
	}
	return fallback
}

// scoreOr keeps the source system's falsy-coalescing: a literal 0 score
// normalizes to null, the same as an absent one.
func scoreOr(v interface{}) *float64 {
	if n, ok := v.(float64); ok && n != 0 {
		return &n
	}
	return nil
}
