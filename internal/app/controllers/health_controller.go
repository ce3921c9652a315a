package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

// HealthController reports whether the backing store is reachable
type HealthController struct {
	pinger repositories.Pinger
	driver string
}

// NewHealthController creates a new HealthController
func NewHealthController(pinger repositories.Pinger, driver string) *HealthController {
	return &HealthController{pinger: pinger, driver: driver}
}

// Health pings the database
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: c.driver, Timestamp: time.Now()}
	if err := c.pinger.Ping(pingCtx); err != nil {
		logger.FromContext(ctx.Request.Context()).Warn().Err(err).Msg("Health check failed")
		resp.Status = "unavailable"
		ctx.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Ping is a liveness check that does not touch the database
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "pong", Status: "success"})
}
