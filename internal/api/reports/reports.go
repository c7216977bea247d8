package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/analytics"
	jwtMiddleware "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/middleware"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/reports"
)

type ReportsHandler struct {
	log            *zap.Logger
	svc            *reports.ReportsService
	secret         string
	serviceKeyHash string
}

func NewReportsHandler(log *zap.Logger, svc *reports.ReportsService, secret, serviceKeyHash string) *ReportsHandler {
	return &ReportsHandler{log: log, svc: svc, secret: secret, serviceKeyHash: serviceKeyHash}
}

func (h *ReportsHandler) Register(r *gin.Engine) {
	g := r.Group("/v1/reports")
	g.Use(jwtMiddleware.AdminMiddleware(h.secret))
	{
		g.GET("/metrics", h.metrics)
		g.GET("/export", h.export)
	}

	// machine callers (scheduled exports) authenticate with a service key
	m := r.Group("/internal/reports")
	m.Use(jwtMiddleware.ServiceKey(h.serviceKeyHash))
	{
		m.GET("/export", h.export)
	}
}

func (h *ReportsHandler) metrics(c *gin.Context) {
	timeRange := analytics.ParseTimeRange(c.Query("range"))
	m, err := h.svc.Metrics(c.Request.Context(), timeRange, time.Now())
	if err != nil {
		h.log.Error("report metrics failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute report metrics"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ReportsHandler) export(c *gin.Context) {
	timeRange := analytics.ParseTimeRange(c.Query("range"))
	format := c.DefaultQuery("format", "html")
	if format != "html" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be html or csv"})
		return
	}

	doc, err := h.svc.Export(c.Request.Context(), timeRange, format, time.Now())
	if err != nil {
		h.log.Error("report export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	filename := fmt.Sprintf("booking_report_%s_%s.%s", timeRange, time.Now().Format("20060102"), format)
	contentType := "text/html; charset=utf-8"
	if format == "csv" {
		contentType = "text/csv; charset=utf-8"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, []byte(doc))
}
