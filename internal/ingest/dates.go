package ingest

import (
	"strings"
	"time"
)

// dateLayouts are tried in fixed priority order before falling back to a
// general ISO-8601 parse.
var dateLayouts = []string{
	"02.01.2006", // DD.MM.YYYY (Norwegian bank exports)
	"2006-01-02", // YYYY-MM-DD
	"02/01/2006", // DD/MM/YYYY
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizedDate carries a parsed date plus the derived aggregation keys.
// When Ok is false the raw token is kept as ISO and the month/weekday are
// unknown: such rows still become transactions but are excluded from
// daily and monthly aggregation.
type NormalizedDate struct {
	ISO      string
	MonthKey string
	Weekday  string
	Ok       bool
}

// NormalizeDate parses a raw date token in the accepted formats.
func NormalizeDate(token string) NormalizedDate {
	token = strings.TrimSpace(token)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return fromTime(t)
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return fromTime(t)
		}
	}

	return NormalizedDate{ISO: token}
}

func fromTime(t time.Time) NormalizedDate {
	return NormalizedDate{
		ISO:      t.Format("2006-01-02"),
		MonthKey: t.Format("2006-01"),
		Weekday:  t.Weekday().String(),
		Ok:       true,
	}
}
