package middleware

import (
	"maps"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guibecker772/advisor-control/internal/events"
)

// AnalyticsTracker is the slice of the posthog wrapper used here.
// *utils.PosthogClientWrapper satisfies it, nil included.
type AnalyticsTracker interface {
	IsInitialized() bool
	Enqueue(distinctID, event string, properties map[string]any)
}

const trackedPrefix = "/api/v1/"

// Top level collections and the data scope each one writes.
var routeScopes = map[string]string{
	"offers":    events.ScopeOffers,
	"clients":   events.ScopeClients,
	"prospects": events.ScopeProspects,
	"captacao":  events.ScopeCaptacao,
}

var methodActions = map[string]string{
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodPatch:  "updated",
	http.MethodDelete: "deleted",
}

// PosthogMiddleware reports every successful write an advisor makes, named
// after the collection it touched: POST /api/v1/offers/:id/reservations
// becomes "offers_reservations_created". Reads and the event stream are not
// reported.
func PosthogMiddleware(tracker AnalyticsTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || !tracker.IsInitialized() {
			return
		}
		action, ok := methodActions[c.Request.Method]
		if !ok || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		scope, parts, ok := routeParts(c.FullPath())
		if !ok {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"scope":       scope,
			"status_code": c.Writer.Status(),
		}
		if id := c.Param("id"); id != "" {
			props["entity_id"] = id
		}
		tracker.Enqueue(userID, strings.Join(append(parts, action), "_"), props)
	}
}

// PosthogEvent sends a named event for outcomes the route alone does not
// tell, such as a prospect becoming a client. The route's scope is added to
// a copy of properties.
func PosthogEvent(c *gin.Context, tracker AnalyticsTracker, event string, properties map[string]any) {
	if tracker == nil || !tracker.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}

	props := make(map[string]any, len(properties)+1)
	maps.Copy(props, properties)
	if scope, _, ok := routeParts(c.FullPath()); ok {
		props["scope"] = scope
	}
	tracker.Enqueue(userID, event, props)
}

// routeParts splits a registered route into its scope and static segments,
// dropping path parameters.
func routeParts(fullPath string) (string, []string, bool) {
	rest, found := strings.CutPrefix(fullPath, trackedPrefix)
	if !found {
		return "", nil, false
	}
	segments := strings.Split(rest, "/")
	scope, ok := routeScopes[segments[0]]
	if !ok {
		return "", nil, false
	}

	parts := []string{scope}
	for _, s := range segments[1:] {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		parts = append(parts, s)
	}
	return scope, parts, true
}
