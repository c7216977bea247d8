package report

import (
	"fmt"
	"html"
	"strings"
)

// ExportHTML renders a metrics snapshot as a single self-contained HTML
// document. Every user-supplied text field goes through html.EscapeString;
// purpose and description fields are free text and must not be able to
// inject markup into the report.
func ExportHTML(m Metrics, timeRange string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Hall Booking Report - %s</title>\n", html.EscapeString(timeRange))
	b.WriteString(`<style>
body { font-family: Arial, sans-serif; margin: 24px; color: #222; }
h1 { border-bottom: 2px solid #2c5f8a; padding-bottom: 8px; }
.cards { display: flex; flex-wrap: wrap; gap: 12px; margin: 16px 0; }
.card { border: 1px solid #ccc; border-radius: 6px; padding: 12px 18px; min-width: 140px; }
.card .value { font-size: 1.6em; font-weight: bold; color: #2c5f8a; }
.card .label { color: #666; font-size: 0.85em; }
table { border-collapse: collapse; width: 100%; margin: 12px 0 24px; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; font-size: 0.9em; }
th { background: #2c5f8a; color: #fff; }
tr:nth-child(even) { background: #f4f7fa; }
</style>
</head>
<body>
`)

	fmt.Fprintf(&b, "<h1>Hall Booking Report (%s)</h1>\n", html.EscapeString(timeRange))
	fmt.Fprintf(&b, "<p>Generated %s · window %s to %s</p>\n",
		m.GeneratedAt.Format("2006-01-02 15:04"),
		m.RangeStart.Format("2006-01-02"),
		m.RangeEnd.Format("2006-01-02"))

	b.WriteString("<div class=\"cards\">\n")
	card(&b, fmt.Sprintf("%d", m.TotalBookings), "Total Bookings")
	card(&b, fmt.Sprintf("%d", m.ApprovedBookings), "Approved")
	card(&b, fmt.Sprintf("%d", m.PendingBookings), "Pending")
	card(&b, fmt.Sprintf("%d", m.CancelledBookings+m.RejectedBookings), "Cancelled / Rejected")
	card(&b, fmt.Sprintf("%.1f%%", m.ApprovalRate), "Approval Rate")
	card(&b, fmt.Sprintf("%.1f%%", m.UtilizationRate), "Utilization")
	card(&b, fmt.Sprintf("%.1f h", m.AverageDurationHours), "Avg Duration")
	card(&b, html.EscapeString(m.PeakHour), "Peak Hour")
	card(&b, html.EscapeString(m.PeakDay), "Peak Day")
	card(&b, html.EscapeString(m.Trend), "Trend")
	b.WriteString("</div>\n")

	b.WriteString("<h2>Popular Halls</h2>\n<table>\n<tr><th>Hall</th><th>Bookings</th></tr>\n")
	for _, h := range m.PopularHalls {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td></tr>\n", html.EscapeString(h.Name), h.Count)
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Top Users</h2>\n<table>\n<tr><th>User</th><th>Bookings</th></tr>\n")
	for _, u := range m.TopUsers {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td></tr>\n", html.EscapeString(u.Name), u.Count)
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Detailed Bookings</h2>\n<table>\n")
	b.WriteString("<tr><th>Date</th><th>Time</th><th>Hall</th><th>User</th><th>Status</th><th>Priority</th><th>Attendees</th><th>Purpose</th><th>Description</th><th>Special Requirements</th></tr>\n")
	for _, d := range m.Detailed {
		date := d.Date.String()
		if d.Date.IsZero() {
			date = "unknown"
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(date),
			html.EscapeString(d.StartTime+" - "+d.EndTime),
			html.EscapeString(d.HallName),
			html.EscapeString(d.UserName),
			html.EscapeString(statusLabel(d)),
			html.EscapeString(d.Priority),
			d.AttendeeCount,
			html.EscapeString(d.Purpose),
			html.EscapeString(d.Description),
			html.EscapeString(d.SpecialReqs),
		)
	}
	b.WriteString("</table>\n</body>\n</html>\n")

	return b.String()
}

func card(b *strings.Builder, value, label string) {
	fmt.Fprintf(b, "<div class=\"card\"><div class=\"value\">%s</div><div class=\"label\">%s</div></div>\n", value, label)
}
