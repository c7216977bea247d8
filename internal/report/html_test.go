package report

import (
	"strings"
	"testing"
)

func TestExportHTMLEscapesMarkup(t *testing.T) {
	m := sampleMetrics()
	m.Detailed[0].Description = `<script>alert(1)</script>`
	m.Detailed[0].Purpose = `<b>bold</b> & "quoted"`

	out := ExportHTML(m, "month")
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("script tag from booking description appears unescaped")
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("escaped script tag not found in output")
	}
	if strings.Contains(out, "<b>bold</b>") {
		t.Error("markup from purpose field appears unescaped")
	}
}

func TestExportHTMLStructure(t *testing.T) {
	out := ExportHTML(sampleMetrics(), "month")
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Popular Halls",
		"Top Users",
		"Detailed Bookings",
		"Main Auditorium",
		"Asha Rao",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestExportHTMLSurfacesRawStatus(t *testing.T) {
	m := sampleMetrics()
	m.Detailed[0].Status = "unknown"
	m.Detailed[0].RawStatus = "archived"

	out := ExportHTML(m, "month")
	if !strings.Contains(out, "unknown (archived)") {
		t.Error("unknown status bucket should surface the raw stored value")
	}
}
