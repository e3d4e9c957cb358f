package ingest

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOk bool
	}{
		{"150", 150, true},
		{"150.50", 150.5, true},
		{"150,50", 150.5, true},
		{"-150,50", -150.5, true},
		{"1 234,56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"1,234.56", 1234.56, true},
		{"1.234.567,89", 1234567.89, true},
		{"1,234,567.89", 1234567.89, true},
		{"kr 99,00", 99, true},
		{"99,00 kr", 99, true},
		{"", 0, false},
		{"-", 0, false},
		{"n/a", 0, false},
		{"..", 0, false},
		{"0", 0, true},
		{"0,00", 0, true},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.raw)
		if ok != tt.wantOk {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tt.raw, ok, tt.wantOk)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
