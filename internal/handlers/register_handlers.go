package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guibecker772/advisor-control/cmd/docs"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/middleware"
	"github.com/guibecker772/advisor-control/internal/platform/config"
	"github.com/guibecker772/advisor-control/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps are the collaborators routes need besides the services.
// Every field is optional.
type RouteDeps struct {
	Events    events.Source
	Posthog   *utils.PosthogClientWrapper
	DB        Pinger // checked by /health when set
	Limiter   *limiter.Limiter
	Heartbeat time.Duration
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	registerValidators()

	r.GET("/", getHome)
	r.GET("/health", healthCheck(deps.DB))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	auth := middleware.AuthConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(auth))
	if deps.Limiter != nil {
		v1.Use(middleware.RateLimit(deps.Limiter))
	}

	RegisterClientRoutes(v1, service.Client)
	RegisterProspectRoutes(v1, service.Prospect, deps.Posthog)
	RegisterCaptacaoRoutes(v1, service.Captacao)
	RegisterOfferRoutes(v1, service.Offer, deps.Posthog)

	if deps.Events != nil {
		// EventSource cannot set headers, so the stream also takes ?access_token=
		streamAuth := auth
		streamAuth.AllowQueryToken = true
		stream := r.Group("/api/v1", middleware.AuthMiddleware(streamAuth))
		RegisterEventRoutes(stream, deps.Events, deps.Heartbeat)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
