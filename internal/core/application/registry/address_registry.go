package registry

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// AddressRegistry deduplicates pickup and delivery addresses by (text, city).
type AddressRegistry struct {
	repo ports.AddressRepository
}

func NewAddressRegistry(repo ports.AddressRepository) AddressRegistry {
	return AddressRegistry{repo: repo}
}

// FindOrCreate returns the address with details' key, creating it on first use.
// Existing addresses are never updated: coordinates, floor, notes and the other
// optional fields of details are ignored on a hit.
func (r AddressRegistry) FindOrCreate(ctx context.Context, details address.Details) (*address.Address, error) {
	key := details.Key()

	existing, err := r.repo.FindByKey(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := address.NewAddress(kernel.NewUUID(), details)
	if err != nil {
		return nil, err
	}

	if err = r.repo.Add(ctx, created); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return r.repo.FindByKey(ctx, key)
		}
		return nil, err
	}

	return created, nil
}
