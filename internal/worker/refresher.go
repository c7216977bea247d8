package worker

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/kafka"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/metrics"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/dashboard"
)

// Refresher consumes booking-change events and recomputes the cached
// dashboard snapshot so the API never serves stale numbers for long.
type Refresher struct {
	log        *zap.Logger
	service    *dashboard.DashboardService
	c          *kafkax.Consumer
	dlq        *kafkax.Producer
	maxWorkers int
}

func NewRefresher(log *zap.Logger, service *dashboard.DashboardService, c *kafkax.Consumer, dlq *kafkax.Producer, maxWorkers int) *Refresher {
	return &Refresher{
		log:        log,
		service:    service,
		c:          c,
		dlq:        dlq,
		maxWorkers: maxWorkers,
	}
}

func (r *Refresher) Run(ctx context.Context) error {
	sem := make(chan struct{}, r.maxWorkers)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			m, err := r.c.Fetch(ctx)
			if err != nil {
				r.log.Error("failed to read message", zap.Error(err))
				continue
			}

			sem <- struct{}{}
			go func(m kafka.Message) {
				defer func() { <-sem }()

				if err := r.handleMessage(ctx, m); err != nil {
					r.log.Error("failed to handle message", zap.Error(err))
					_ = r.dlq.Publish(ctx, m.Key, m.Value)
				} else {
					_ = r.c.Commit(ctx, m)
				}
			}(m)
		}
	}
}

func (r *Refresher) handleMessage(ctx context.Context, m kafka.Message) error {
	ev, err := kafkax.ParseChangeEvent(m.Value)
	if err != nil {
		return err
	}

	r.log.Debug("booking change", zap.String("type", ev.Type), zap.String("booking_id", ev.BookingID))
	if err := r.service.RefreshCache(ctx); err != nil {
		return err
	}
	metrics.SnapshotRefreshTotal.Inc()
	return nil
}
