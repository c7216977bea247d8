package normalize

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"iso", "2025-07-15", Date{2025, 7, 15}},
		{"compact", "15072025", Date{2025, 7, 15}},
		{"iso first of month", "2024-02-01", Date{2024, 2, 1}},
		{"compact leap day", "29022024", Date{2024, 2, 29}},
		{"iso with surrounding space", " 2025-01-02 ", Date{2025, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateBothEncodingsAgree(t *testing.T) {
	iso, err := ParseDate("2025-07-15")
	if err != nil {
		t.Fatalf("iso: %v", err)
	}
	compact, err := ParseDate("15072025")
	if err != nil {
		t.Fatalf("compact: %v", err)
	}
	if !iso.Equal(compact) {
		t.Errorf("same calendar day decoded differently: iso=%v compact=%v", iso, compact)
	}
}

func TestParseDateMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"two parts", "2025-07"},
		{"non numeric parts", "20xx-07-15"},
		{"iso month out of range", "2025-13-01"},
		{"iso day out of range", "2025-04-31"},
		{"compact day out of range", "32012025"},
		{"compact month out of range", "15132025"},
		{"compact non leap feb 29", "29022025"},
		{"seven digits", "1072025"},
		{"nine digits", "150720251"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if err == nil {
				t.Fatalf("ParseDate(%q) succeeded, want error", tt.input)
			}
			var malformed *MalformedDateError
			if !errors.As(err, &malformed) {
				t.Errorf("ParseDate(%q) error type = %T, want *MalformedDateError", tt.input, err)
			}
		})
	}
}

func TestDateWeekday(t *testing.T) {
	d, err := ParseDate("2025-07-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := d.Weekday().String(); got != "Tuesday" {
		t.Errorf("Weekday() = %s, want Tuesday", got)
	}
}
