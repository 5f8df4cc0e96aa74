package partyrepo

import (
	"context"
	"errors"

	"shipping/internal/adapters/out/postgres/pgerr"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartyRepository implements ports.PartyRepository using GORM.
type GormPartyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPartyRepository(db *gorm.DB, tracker aggregateTracker) *GormPartyRepository {
	return &GormPartyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the party inside a savepoint so that a duplicate document leaves
// the caller's transaction usable for the follow-up lookup.
func (r *GormPartyRepository) Add(ctx context.Context, aggregate *party.Party) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		key := aggregate.Key()
		return pgerr.Translate(err, "party", key.Type+"/"+key.Number)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPartyRepository) FindByDocument(ctx context.Context, key party.DocumentKey) (*party.Party, error) {
	var dto PartyDTO
	err := r.db.WithContext(ctx).
		Where("document_type = ? AND document_number = ?", key.Type, key.Number).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", key.Type+"/"+key.Number)
		}
		return nil, err
	}

	return toDomain(dto)
}
