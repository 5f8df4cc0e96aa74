package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tracking"
)

// TrackingRepository stores issued tracking records.
type TrackingRepository interface {
	// Add returns errs.ErrConflict when either code is already in use.
	Add(ctx context.Context, r *tracking.Record) error

	Get(ctx context.Context, id kernel.UUID) (*tracking.Record, error)

	// ExistsByCode reports whether code is used as a public or internal code.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
