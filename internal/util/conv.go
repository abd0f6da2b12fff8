package util

import (
	"strconv"
)

// MustParseUint converts s to an unsigned integer, returning 0 when it does
// not parse.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// QueryInt parses an optional integer query value; nil when absent or
// unparseable.
func QueryInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// PageParams normalizes page/limit query strings to sane bounds.
func PageParams(pageStr, limitStr string) (page, limit int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
