package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// badReference converts a missing-row lookup error into a validation error.
// Rows referenced by a request body are caller input, so a miss is a 400,
// not a 404; only URL path targets keep ErrNotFound.
func badReference(err error, format string, args ...any) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: "+format, append([]any{apperrors.ErrValidation}, args...)...)
	}
	return err
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
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
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
