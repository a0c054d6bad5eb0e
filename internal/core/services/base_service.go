package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Audit portsrepo.AuditRecorder
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
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

// RecordAudit appends an entry to the audit trail. The trail is best-effort;
// a failed write is logged and does not fail the calling operation.
func (s *BaseService) RecordAudit(ctx context.Context, actor, action, entity, entityID string) {
	if s.Audit == nil {
		return
	}
	entry := domain.AuditEntry{
		AuditID:  uuid.NewString(),
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		At:       time.Now(),
	}
	if err := s.Audit.RecordAudit(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record audit entry",
			slog.String("action", action),
			slog.String("entity", entity),
			slog.String("entity_id", entityID))
	}
}
