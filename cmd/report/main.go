package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/config"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/logger"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/mailer"
	mailerService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/mailer"
	recordsService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/records"
	reportsService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/reports"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store"
	storeBookings "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	storeHalls "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	storeUsers "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

// One-shot report generation for cron jobs: fetch, compute, export, write.
// This is the only place export output touches disk; the exporters
// themselves only build strings.
func main() {
	_ = godotenv.Load()

	rangeFlag := flag.String("range", "month", "report window: week|month|quarter|year")
	formatFlag := flag.String("format", "html", "output format: html|csv")
	outFlag := flag.String("out", "", "output file (default booking_report_<range>.<format>)")
	emailFlag := flag.Bool("email", false, "also email the HTML report to REPORT_RECIPIENT")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.PostgresURL, int32(cfg.MaxDBConnections))
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	bookingsRepo := storeBookings.NewBookingsRepository(db, log)
	hallsRepo := storeHalls.NewHallsRepository(db, log)
	usersRepo := storeUsers.NewUsersRepository(db, log)

	mailerSender := &mailer.SMTPSender{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}
	mailerSvc := mailerService.NewMailerService(log, mailerSender)

	fetcher := recordsService.NewFetcher(log, bookingsRepo, hallsRepo, usersRepo)
	svc := reportsService.NewReportsService(log, fetcher, mailerSvc)

	timeRange := analytics.ParseTimeRange(*rangeFlag)
	now := time.Now()

	doc, err := svc.Export(ctx, timeRange, *formatFlag, now)
	if err != nil {
		log.Fatal("report generation failed", zap.Error(err))
	}

	out := *outFlag
	if out == "" {
		out = fmt.Sprintf("booking_report_%s.%s", timeRange, *formatFlag)
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		log.Fatal("write report", zap.Error(err), zap.String("path", out))
	}
	log.Info("report written", zap.String("path", out))

	if *emailFlag && cfg.ReportRecipient != "" {
		if err := svc.EmailReport(ctx, timeRange, cfg.ReportRecipient, now); err != nil {
			log.Error("email report failed", zap.Error(err))
		}
	}

	fmt.Println("report generated at", time.Now().Format(time.RFC3339))
}
