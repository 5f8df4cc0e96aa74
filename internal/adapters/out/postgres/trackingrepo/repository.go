package trackingrepo

import (
	"context"
	"errors"

	"shipping/internal/adapters/out/postgres/pgerr"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTrackingRepository) Add(ctx context.Context, record *tracking.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := FromDomain(record)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		return pgerr.Translate(err, "trackingCode", dto.PublicCode)
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingRecord", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormTrackingRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	code = tracking.NormalizeCode(code)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("public_code = ? OR internal_code = ?", code, code).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
