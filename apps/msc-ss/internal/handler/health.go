package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/dto"
	"github.com/oyaguma3/msc-ss-poc/pkg/httputil"
)

// HandleHealth はGET /health のハンドラー。
func (h *Handler) HandleHealth(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		slog.Error("health check failed",
			"trace_id", traceID(c),
			"event_id", "VALKEY_CONN_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.ServiceUnavailable("Subscriber store unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
