package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRequestRepository stores shipment request aggregates. Requests are
// always returned with their tracking record loaded.
type ShipmentRequestRepository interface {
	// Add persists a new request. The tracking record must have been stored already.
	Add(ctx context.Context, r *shipment.Request) error

	// Update persists status, staff and cancellation changes.
	Update(ctx context.Context, r *shipment.Request) error

	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error)

	// GetForUpdate is Get plus a row lock held until the surrounding transaction ends.
	// Concurrent assignments on the same request are serialised by it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Request, error)

	// GetByTrackingCode matches the public or the internal tracking code.
	GetByTrackingCode(ctx context.Context, code string) (*shipment.Request, error)

	// ListByDriver returns every request bound to the driver, newest first.
	ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Request, error)
}
