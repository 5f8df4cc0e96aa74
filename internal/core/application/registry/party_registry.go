package registry

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// PartyRegistry deduplicates senders and recipients by document.
type PartyRegistry struct {
	repo ports.PartyRepository
}

func NewPartyRegistry(repo ports.PartyRepository) PartyRegistry {
	return PartyRegistry{repo: repo}
}

// FindOrCreate returns the party holding details' document, creating it on first use.
// An existing party is returned unchanged; the other fields of details are ignored.
//
// Returns errs.ErrValueIsRequired when the document number is missing.
func (r PartyRegistry) FindOrCreate(ctx context.Context, details party.Details) (*party.Party, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	key := details.Key()
	existing, err := r.repo.FindByDocument(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := party.NewParty(kernel.NewUUID(), details, time.Now())
	if err != nil {
		return nil, err
	}

	if err = r.repo.Add(ctx, created); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return r.repo.FindByDocument(ctx, key)
		}
		return nil, err
	}

	return created, nil
}
