package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/config"
	kafkax "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/kafka"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/logger"
	redisx "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/redis"
	dashboardService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/dashboard"
	recordsService "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/records"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store"
	storeBookings "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/bookings"
	storeHalls "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/halls"
	storeUsers "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store/users"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/worker"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)
	log.Info("snapshot worker starting")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := store.NewDB(ctx, cfg.PostgresURL, int32(cfg.MaxDBConnections))
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	bookingsRepo := storeBookings.NewBookingsRepository(db, log)
	hallsRepo := storeHalls.NewHallsRepository(db, log)
	usersRepo := storeUsers.NewUsersRepository(db, log)

	cache := redisx.NewSnapshotCache(cfg.RedisAddr, time.Duration(cfg.SnapshotTTLSeconds)*time.Second)
	defer cache.Close()

	fetcher := recordsService.NewFetcher(log, bookingsRepo, hallsRepo, usersRepo)
	dashboardSvc := dashboardService.NewDashboardService(log, fetcher, cache)

	consumer := kafkax.NewConsumer([]string{cfg.KafkaBrokers}, "hallbook-snapshot", "booking-changes")
	defer consumer.Close()
	dlq := kafkax.NewProducer([]string{cfg.KafkaBrokers}, "booking-changes-dlq")
	defer dlq.Close()

	r := worker.NewRefresher(log, dashboardSvc, consumer, dlq, cfg.MaxWorkerRoutineCount)
	_ = r.Run(ctx)

	<-ctx.Done()
	log.Info("snapshot worker stopped")
}
