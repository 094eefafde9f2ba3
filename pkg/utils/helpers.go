package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber parses a cell as float64. Thousands separators and surrounding
// whitespace are tolerated since exported revenue columns often carry them.
func ParseNumber(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}

// ToFloat safely converts supported cell types to float64.
func ToFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		if f, err := ParseNumber(val); err == nil {
			return f, true
		}
	}
	return 0, false
}

// CellText renders a cell for comparison, display and CSV output. Numbers use
// the shortest representation that round-trips; nil renders empty.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
