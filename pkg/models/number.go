package models

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber is a best-effort numeric parse of a spreadsheet or JSON cell.
// Thousands separators are ignored and trailing garbage after a numeric
// prefix is dropped ("85%" is 85). The boolean is false for empty or
// non-numeric input.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		prefix := numberPrefix.FindString(s)
		if prefix == "" {
			return 0, false
		}
		if f, err = strconv.ParseFloat(prefix, 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ViewCount is a YouTube view count. It decodes from a number or from text
// such as "1,204,332" or "".
type ViewCount int64

// ParseViewCount reads a view count from text. Malformed or negative input
// is 0. The boolean reports whether the text was used as-is.
func ParseViewCount(s string) (ViewCount, bool) {
	f, ok := ParseNumber(s)
	switch {
	case !ok:
		return 0, strings.TrimSpace(s) == ""
	case f < 0:
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, false
	}
	return ViewCount(f), true
}

// UnmarshalJSON accepts a number, a numeric string, "" or null. Values that
// are not numbers decode as 0.
func (v *ViewCount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	*v, _ = ParseViewCount(s)
	return nil
}
