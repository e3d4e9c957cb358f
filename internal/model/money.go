package model

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount in the Norwegian style: space as the
// thousands separator, comma as the decimal separator, "kr" suffix.
// Example: 1234.5 -> "1 234,50 kr".
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	b.WriteString(" kr")
	return b.String()
}
