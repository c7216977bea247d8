package report

import (
	"fmt"
	"strconv"
	"strings"
)

// ExportCSV renders a metrics snapshot as a sectioned CSV document. Fields
// containing a comma, quote, or newline are wrapped in quotes with embedded
// quotes doubled (RFC 4180), so free-text purpose and description columns
// round-trip through spreadsheet tools.
func ExportCSV(m Metrics, timeRange string) string {
	var b strings.Builder

	row(&b, "SUMMARY METRICS")
	row(&b, "Metric", "Value")
	row(&b, "Report Range", timeRange)
	row(&b, "Generated At", m.GeneratedAt.Format("2006-01-02 15:04"))
	row(&b, "Total Bookings", strconv.Itoa(m.TotalBookings))
	row(&b, "Pending", strconv.Itoa(m.PendingBookings))
	row(&b, "Approved", strconv.Itoa(m.ApprovedBookings))
	row(&b, "Rejected", strconv.Itoa(m.RejectedBookings))
	row(&b, "Cancelled", strconv.Itoa(m.CancelledBookings))
	row(&b, "Completed", strconv.Itoa(m.CompletedBookings))
	row(&b, "Unknown Status", strconv.Itoa(m.UnknownStatus))
	row(&b, "Approval Rate", fmt.Sprintf("%.1f%%", m.ApprovalRate))
	row(&b, "Cancellation Rate", fmt.Sprintf("%.1f%%", m.CancellationRate))
	row(&b, "Average Duration (hours)", fmt.Sprintf("%.2f", m.AverageDurationHours))
	row(&b, "Utilization Rate", fmt.Sprintf("%.1f%%", m.UtilizationRate))
	row(&b, "Peak Hour", m.PeakHour)
	row(&b, "Peak Day", m.PeakDay)
	b.WriteString("\n")

	row(&b, "POPULAR HALLS")
	row(&b, "Hall", "Bookings")
	for _, h := range m.PopularHalls {
		row(&b, h.Name, strconv.Itoa(h.Count))
	}
	b.WriteString("\n")

	row(&b, "TOP USERS")
	row(&b, "User", "Bookings")
	for _, u := range m.TopUsers {
		row(&b, u.Name, strconv.Itoa(u.Count))
	}
	b.WriteString("\n")

	row(&b, "BOOKING TRENDS")
	row(&b, "Period", "From", "To", "Bookings")
	for _, p := range m.Periods {
		row(&b, p.Label, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"), strconv.Itoa(p.Count))
	}
	row(&b, "Overall Trend", m.Trend)
	b.WriteString("\n")

	row(&b, "DETAILED BOOKING RECORDS")
	row(&b, "Date", "Start", "End", "Hall", "Location", "User", "Email", "Department",
		"Status", "Priority", "Duration (min)", "Attendees", "Equipment", "Purpose",
		"Description", "Special Requirements")
	for _, d := range m.Detailed {
		date := d.Date.String()
		if d.Date.IsZero() {
			date = "unknown"
		}
		row(&b,
			date, d.StartTime, d.EndTime, d.HallName, d.HallLocation,
			d.UserName, d.UserEmail, d.UserDepartment,
			statusLabel(d), d.Priority,
			strconv.Itoa(d.DurationMinutes), strconv.Itoa(d.AttendeeCount),
			strings.Join(d.Equipment, "; "),
			d.Purpose, d.Description, d.SpecialReqs,
		)
	}

	return b.String()
}

func row(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(f))
	}
	b.WriteByte('\n')
}

// csvField quotes a field when it contains a comma, quote, or newline,
// doubling any embedded quotes.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
