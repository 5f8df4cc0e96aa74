package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
)

// PartyRepository stores senders and recipients.
type PartyRepository interface {
	// Add inserts a new party. Returns errs.ErrConflict when another party
	// already holds the same document; the surrounding transaction stays usable.
	Add(ctx context.Context, p *party.Party) error

	// Get returns errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*party.Party, error)

	// FindByDocument looks a party up by its natural key.
	// Returns errs.ErrObjectNotFound when no party holds the document.
	FindByDocument(ctx context.Context, key party.DocumentKey) (*party.Party, error)
}
