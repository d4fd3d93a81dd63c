package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guibecker772/advisor-control/internal/core/services"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/handlers"
	"github.com/guibecker772/advisor-control/internal/middleware"
	"github.com/guibecker772/advisor-control/internal/repositories/database/pgsql"
	"github.com/guibecker772/advisor-control/internal/utils"
	"github.com/guibecker772/advisor-control/pkg/database"
	"github.com/spf13/cobra"
)

var skipMigrations bool

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Apply pending migrations and start the HTTP API server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initialize database connection pool (for application use)
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			return err
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if !skipMigrations {
			logger.Info("Running database migrations...")
			if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, 0); err != nil {
				logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				return err
			}
		}

		posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
		defer posthogClient.Close()

		rateLimiter, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
			return err
		}

		bus := events.NewBus(logger)
		repos := pgsql.NewRepositoryProvider(dbPool)
		serviceContainer := services.NewServiceContainer(cfg, repos, bus)

		if cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.New()

		// Global middleware (logging, recovery)
		r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
		r.Use(middleware.PosthogMiddleware(posthogClient))

		if err := r.SetTrustedProxies(nil); err != nil {
			logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
			return err
		}

		deps := handlers.RouteDeps{
			Events:  bus,
			Posthog: posthogClient,
			Limiter: rateLimiter,
		}
		if cfg.EnableDBCheck {
			deps.DB = dbPool
		}
		handlers.RegisterRoutes(r, cfg, serviceContainer, deps)

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			// event streams end when the signal cancels their request context
			BaseContext: func(net.Listener) context.Context { return ctx },
		}

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("Server starting", slog.String("port", cfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				logger.Error("Server failed to run", slog.String("error", err.Error()))
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown timed out", slog.String("error", err.Error()))
			return srv.Close()
		}
		return nil
	},
}

func init() {
	serveCMD.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
}
