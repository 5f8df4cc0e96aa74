package ports

import (
	"context"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
)

// AddressRepository stores deduplicated pickup and delivery addresses.
type AddressRepository interface {
	// Add inserts a new address. Returns errs.ErrConflict when the (text, city)
	// key is already taken; the surrounding transaction stays usable.
	Add(ctx context.Context, a *address.Address) error

	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// FindByKey returns errs.ErrObjectNotFound when no address has the key.
	FindByKey(ctx context.Context, key address.Key) (*address.Address, error)
}
