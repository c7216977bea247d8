package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallbook_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	ReportExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallbook_report_exports_total",
		Help: "Report exports by format",
	}, []string{"format"})

	RecordFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hallbook_record_fetch_duration_seconds",
		Help:    "Duration of record-store fetches",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	SnapshotCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallbook_snapshot_cache_total",
		Help: "Dashboard snapshot cache hits and misses",
	}, []string{"result"})

	SnapshotRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hallbook_snapshot_refresh_total",
		Help: "Total worker-driven snapshot refreshes",
	})

	SkippedRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hallbook_skipped_records_total",
		Help: "Records excluded from date buckets or resolved to placeholders",
	}, []string{"reason"})
)
