package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/middleware"
)

// DefaultHeartbeat keeps idle streams alive through proxies.
const DefaultHeartbeat = 25 * time.Second

// streamBuffer is how many invalidations a slow stream may lag behind before drops.
const streamBuffer = 32

type eventsHandler struct {
	source    events.Source
	heartbeat time.Duration
}

// RegisterEventRoutes registers the Server-Sent Events stream of data invalidations.
// The group must accept ?access_token= since EventSource cannot send headers.
func RegisterEventRoutes(rg *gin.RouterGroup, source events.Source, heartbeat time.Duration) {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	h := &eventsHandler{source: source, heartbeat: heartbeat}
	rg.GET("/events", h.stream)
}

// stream godoc
// @Summary Stream data invalidations
// @Description Server-Sent Events named ac:data-invalidated carrying {scopes, entityIds, timestamp} for the caller's data.
// @Tags events
// @Produce text/event-stream
// @Param   access_token query string false "Bearer token for clients that cannot set headers"
// @Success 200 {object} events.Invalidation
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /events [get]
func (h *eventsHandler) stream(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pending := make(chan events.Invalidation, streamBuffer)
	unsubscribe := h.source.Subscribe(func(ev events.Invalidation) {
		if ev.OwnerID != userID {
			return
		}
		select {
		case pending <- ev:
		default:
			logger.Warn("Invalidation dropped for slow stream", slog.Any("scopes", ev.Scopes))
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	logger.Info("Invalidation stream opened")
	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev := <-pending:
			c.SSEvent(events.InvalidationEvent, ev)
			return true
		case t := <-heartbeat.C:
			c.SSEvent("heartbeat", gin.H{"timestamp": t.UTC()})
			return true
		}
	})
	logger.Info("Invalidation stream closed")
}
