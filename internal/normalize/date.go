package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MalformedDateError reports a booking date string that matches neither the
// ISO YYYY-MM-DD nor the compact DDMMYYYY encoding, or that names an
// impossible calendar date.
type MalformedDateError struct {
	Input string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed booking date %q", e.Input)
}

// Date is a canonical calendar date. Both wire encodings normalize to this
// one shape so that "same day" comparisons work regardless of which encoding
// a record was stored with.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ParseDate decodes a raw booking date string.
//
// Two encodings coexist in the stored data (an artifact of a migration):
// 8 digits with no separators are DDMMYYYY; anything else is treated as
// ISO YYYY-MM-DD. An 8-digit string naming an invalid calendar date is an
// error, not a guess.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) == 8 && allDigits(s) {
		d, _ := strconv.Atoi(s[0:2])
		m, _ := strconv.Atoi(s[2:4])
		y, _ := strconv.Atoi(s[4:8])
		dt := Date{Year: y, Month: m, Day: d}
		if !dt.valid() {
			return Date{}, &MalformedDateError{Input: s}
		}
		return dt, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, &MalformedDateError{Input: s}
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, &MalformedDateError{Input: s}
	}
	dt := Date{Year: y, Month: m, Day: d}
	if !dt.valid() {
		return Date{}, &MalformedDateError{Input: s}
	}
	return dt, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (d Date) valid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= daysInMonth(d.Year, d.Month)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
	return 0
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of week for the date.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateOf truncates a timestamp to its calendar date in the timestamp's
// location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}
