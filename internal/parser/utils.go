package parser

import (
	"strconv"
	"strings"
)

// NormalizeHeader trims surrounding whitespace and lowercases a header for
// alias comparison
func NormalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func trimCell(v string) string {
	return strings.TrimSpace(v)
}

// ParseNumber coerces a cell value to a float. Currency symbols and
// thousands separators are stripped first. Empty cells and parse failures
// yield nil.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
