package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miniauth/backend/internal/model"
)

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
}
