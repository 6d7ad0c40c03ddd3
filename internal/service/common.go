package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const timestampLayout = time.RFC3339

// validationError turns validator output into an application validation error
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// notFoundOr maps gorm's record-not-found to notFound and wraps anything else
func notFoundOr(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// refreshSnapshot rebuilds the statistics snapshot after a write. The write already
// succeeded, so a failed refresh is only logged; the change listener catches up later.
func refreshSnapshot(snapshots SnapshotProvider, operation string) {
	if snapshots == nil {
		return
	}
	if err := snapshots.Refresh(context.Background()); err != nil {
		logger.WithComponent("service").
			WithError(err).
			WithField("operation", operation).
			Warn("Snapshot refresh after write failed")
	}
}
