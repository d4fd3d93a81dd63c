package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is the database check behind /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Advisor Control API v1"})
}

// healthCheck answers OK, pinging the database first when db is set.
func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				slog.Error("Health check database ping failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "DB UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}
