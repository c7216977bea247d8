package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/enrich"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/normalize"
)

func sampleMetrics() Metrics {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	return Metrics{
		GeneratedAt:       now,
		TimeRange:         analytics.RangeMonth,
		RangeStart:        now.AddDate(0, 0, -30),
		RangeEnd:          now,
		TotalBookings:     2,
		ApprovedBookings:  1,
		PendingBookings:   1,
		ApprovalRate:      50,
		PeakHour:          "10:00",
		PeakDay:           "Tuesday",
		Trend:             analytics.TrendStable,
		PopularHalls:      []HallCount{{Name: "Main Auditorium", Count: 2}},
		TopUsers:          []analytics.UserCount{{Name: "Asha Rao", Count: 2}},
		Periods:           analytics.BucketPeriods(nil, analytics.RangeMonth, now),
		Detailed: []enrich.Booking{
			{
				Booking: normalize.Booking{
					Date:            normalize.Date{Year: 2025, Month: 7, Day: 10},
					StartTime:       "10:00",
					EndTime:         "12:00",
					Status:          "approved",
					RawStatus:       "approved",
					Priority:        "medium",
					DurationMinutes: 120,
					Purpose:         `Guest lecture, "Quantum Computing"`,
					Description:     "Line one\nline two",
					Equipment:       []string{"projector", "mic"},
				},
				HallName:     "Main Auditorium",
				HallLocation: "Block A",
				HallResolved: true,
				UserName:     "Asha Rao",
				UserEmail:    "asha@campus.edu",
				UserResolved: true,
			},
		},
	}
}

func TestCSVField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"has,comma", `"has,comma"`},
		{`has "quote"`, `"has ""quote"""`},
		{"has\nnewline", "\"has\nnewline\""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := csvField(tt.in); got != tt.want {
			t.Errorf("csvField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportCSVSections(t *testing.T) {
	out := ExportCSV(sampleMetrics(), "month")
	for _, section := range []string{
		"SUMMARY METRICS", "POPULAR HALLS", "TOP USERS",
		"BOOKING TRENDS", "DETAILED BOOKING RECORDS",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("CSV output missing section %q", section)
		}
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	original := `Guest lecture, "Quantum Computing"`
	out := ExportCSV(sampleMetrics(), "month")

	// locate the detailed section and re-parse it with a conforming reader
	idx := strings.Index(out, "DETAILED BOOKING RECORDS")
	if idx < 0 {
		t.Fatal("detailed section missing")
	}
	r := csv.NewReader(strings.NewReader(out[idx:]))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-parsing CSV: %v", err)
	}
	if len(records) < 3 {
		t.Fatalf("got %d rows in detailed section, want header + 1 record", len(records))
	}

	var found bool
	for _, field := range records[2] {
		if field == original {
			found = true
		}
	}
	if !found {
		t.Errorf("purpose field did not round-trip; row = %q", records[2])
	}
}

func TestExportCSVEmptySnapshot(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	m := Compute(nil, nil, nil, analytics.RangeWeek, now)
	out := ExportCSV(m, "week")
	if !strings.Contains(out, "Total Bookings,0") {
		t.Errorf("empty snapshot should report zero totals, got:\n%s", out)
	}
}
