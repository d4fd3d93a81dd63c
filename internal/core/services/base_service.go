package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events events.Publisher
	Clock  func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithEvents makes the service publish invalidations after each write.
func WithEvents(publisher events.Publisher) Option {
	return func(s *BaseService) {
		s.Events = publisher
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options ...Option) BaseService {
	base := BaseService{Clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Invalidate tells subscribers that the owner's data under scopes changed.
func (s *BaseService) Invalidate(ctx context.Context, ownerID string, entityIDs []string, scopes ...string) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(events.Invalidation{
		OwnerID:   ownerID,
		Scopes:    scopes,
		EntityIDs: entityIDs,
		Timestamp: s.Now(),
	})
	s.LogDebug(ctx, "Published data invalidation",
		slog.String("owner_id", ownerID),
		slog.Any("scopes", scopes))
}

// expectedVersion picks the version an update must match. Callers that send no
// version get last-write-wins against the row they just loaded.
func expectedVersion(requested *int64, loaded int64) int64 {
	if requested != nil {
		return *requested
	}
	return loaded
}
