package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apiDashboard "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/api/dashboard"
	apiReports "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/api/reports"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/config"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/mailer"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/middleware"
	redisx "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/redis"
	dashboardService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/dashboard"
	mailerService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/mailer"
	recordsService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/records"
	reportsService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/reports"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store"
	storeBookings "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	storeHalls "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	storeUsers "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
)

// RegisterRoutes wires all HTTP routes.
func RegisterRoutes(r *gin.Engine, log *zap.Logger) {
	r.Use(middleware.MetricsMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "HallBook Analytics",
			"description": "Booking analytics and reporting for the seminar hall platform.",
			"version":     "1.0.0",
			"endpoints":   []string{"/v1/health", "/v1/dashboard/stats", "/v1/reports/metrics", "/v1/reports/export"},
		})
	})
	r.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cfg := config.Load()
	cache := redisx.NewSnapshotCache(cfg.RedisAddr, time.Duration(cfg.SnapshotTTLSeconds)*time.Second)
	r.Use(middleware.HybridRateLimit(cache.GetClient(), 50, 100))

	db, err := store.NewDB(context.Background(), cfg.PostgresURL, int32(cfg.MaxDBConnections))
	if err != nil {
		// When DB is unavailable, endpoints will still serve 500 gracefully.
		log.Warn("db init failed", zap.Error(err))
		return
	}

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
	dashboardSvc := dashboardService.NewDashboardService(log, fetcher, cache)
	reportsSvc := reportsService.NewReportsService(log, fetcher, mailerSvc)

	apiDashboard.NewDashboardHandler(log, dashboardSvc, cfg.JWTSigningSecret).Register(r)
	apiReports.NewReportsHandler(log, reportsSvc, cfg.JWTSigningSecret, cfg.ServiceKeyHash).Register(r)
}
