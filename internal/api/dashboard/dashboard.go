package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	jwtMiddleware "github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/middleware"
	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/service/dashboard"
)

type DashboardHandler struct {
	log    *zap.Logger
	svc    *dashboard.DashboardService
	secret string
}

func NewDashboardHandler(log *zap.Logger, svc *dashboard.DashboardService, secret string) *DashboardHandler {
	return &DashboardHandler{log: log, svc: svc, secret: secret}
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	g := r.Group("/v1/dashboard")
	g.Use(jwtMiddleware.UserMiddleware(h.secret))
	{
		g.GET("/stats", h.stats)
	}
}

func (h *DashboardHandler) stats(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "1"
	stats, err := h.svc.Stats(c.Request.Context(), forceRefresh)
	if err != nil {
		h.log.Error("dashboard stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute dashboard statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
