package reports

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/metrics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/report"
	mailerService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/mailer"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/records"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
)

type ReportsService struct {
	log     *zap.Logger
	fetcher *records.Fetcher
	mailer  *mailerService.MailerService
}

func NewReportsService(log *zap.Logger, fetcher *records.Fetcher, mailer *mailerService.MailerService) *ReportsService {
	return &ReportsService{log: log, fetcher: fetcher, mailer: mailer}
}

// Metrics fetches the record sets for the window and computes a full report
// snapshot. Halls and users are fetched scoped to the window's bookings, so
// a quarterly export does not drag the whole profile table over the wire.
// A fetch failure fails the whole report; there are no partial reports.
func (s *ReportsService) Metrics(ctx context.Context, timeRange analytics.TimeRange, now time.Time) (report.Metrics, error) {
	from := now.AddDate(0, 0, -timeRange.Days())
	sets, err := s.fetcher.FetchScoped(ctx, bookings.Filter{DateFrom: &from, DateTo: &now})
	if err != nil {
		return report.Metrics{}, err
	}
	return report.Compute(sets.Bookings, sets.Halls, sets.Users, timeRange, now), nil
}

// Export produces the serialized report in the requested format.
func (s *ReportsService) Export(ctx context.Context, timeRange analytics.TimeRange, format string, now time.Time) (string, error) {
	m, err := s.Metrics(ctx, timeRange, now)
	if err != nil {
		return "", err
	}

	var doc string
	switch format {
	case "csv":
		doc = report.ExportCSV(m, string(timeRange))
	default:
		format = "html"
		doc = report.ExportHTML(m, string(timeRange))
	}
	metrics.ReportExportsTotal.WithLabelValues(format).Inc()
	s.log.Info("report exported",
		zap.String("format", format),
		zap.String("range", string(timeRange)),
		zap.Int("records", m.TotalBookings),
	)
	return doc, nil
}

// EmailReport renders the HTML report and mails it to the recipient.
func (s *ReportsService) EmailReport(ctx context.Context, timeRange analytics.TimeRange, recipient string, now time.Time) error {
	doc, err := s.Export(ctx, timeRange, "html", now)
	if err != nil {
		return err
	}
	return s.mailer.SendReportEmail(recipient, string(timeRange), doc)
}
