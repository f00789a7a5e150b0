package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmrivero/chatsurvey/internal/db"
)

// HealthController reports service liveness and database reachability
type HealthController struct {
	database *db.PostgresDB
}

// NewHealthController creates a new HealthController
func NewHealthController(database *db.PostgresDB) *HealthController {
	return &HealthController{database: database}
}

// Check godoc
// @Summary Health check
// @Description Reports API status and database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	database := "connected"
	if err := c.database.Ping(ctx.Request.Context()); err != nil {
		database = "disconnected"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
