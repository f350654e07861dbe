package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogUnexpected logs err unless it is one of the caller-facing taxonomy errors.
func (s *BaseService) LogUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	for _, expected := range []error{
		apperrors.ErrNotFound, apperrors.ErrValidation, apperrors.ErrConflict,
		apperrors.ErrForbidden, apperrors.ErrUnauthorized, apperrors.ErrInvalidTransition,
	} {
		if errors.Is(err, expected) {
			s.LogDebug(ctx, msg, append(keyvals, slog.String("error", err.Error()))...)
			return
		}
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequirePrivileged fails with a forbidden error unless the actor is an administrator or staff.
func (s *BaseService) RequirePrivileged(ctx context.Context, actor *domain.Actor, action string) error {
	if actor.IsPrivileged() {
		return nil
	}
	s.LogDebug(ctx, "Privileged action denied",
		slog.String("actor_id", actor.ActorID),
		slog.String("action", action))
	return apperrors.NewForbiddenError("only administrators may " + action)
}
