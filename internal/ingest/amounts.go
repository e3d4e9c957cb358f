package ingest

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a raw cell into a float. Handles Norwegian and
// European formatting ("1 234,56", "1.234,56") as well as plain decimals.
// Missing or non-numeric cells yield (0, false); callers treat them as
// zero per the dual-column contract.
func ParseAmount(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}

	comma := strings.LastIndex(cleaned, ",")
	dot := strings.LastIndex(cleaned, ".")
	switch {
	case comma >= 0 && dot >= 0:
		// Rightmost separator is the decimal mark, the other is a
		// thousands separator.
		if comma > dot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case comma >= 0:
		if strings.Count(cleaned, ",") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
