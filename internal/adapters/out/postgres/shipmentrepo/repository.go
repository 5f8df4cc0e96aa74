package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/adapters/out/postgres/pgerr"
	"shipping/internal/adapters/out/postgres/trackingrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mutableColumns are the only columns a request changes after it is filed.
var mutableColumns = []string{"status", "driver_id", "manager_id", "cancellation_reason", "updated_at"}

// GormShipmentRequestRepository implements ports.ShipmentRequestRepository using GORM.
type GormShipmentRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRequestRepository {
	return &GormShipmentRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the request row only; its tracking record must already be stored.
func (r *GormShipmentRequestRepository) Add(ctx context.Context, aggregate *shipment.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&dto).Error
	})
	if err != nil {
		return pgerr.Translate(err, "shipmentRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRequestRepository) Update(ctx context.Context, aggregate *shipment.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "shipmentRequest", aggregate.ID().String())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE lock on the request row.
func (r *GormShipmentRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShipmentRequestRepository) get(db *gorm.DB, id kernel.UUID) (*shipment.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := db.Preload("Tracking").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRequestRepository) GetByTrackingCode(ctx context.Context, code string) (*shipment.Request, error) {
	code = tracking.NormalizeCode(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	db := r.db.WithContext(ctx)
	records := db.Model(&trackingrepo.RecordDTO{}).
		Select("id").
		Where("public_code = ? OR internal_code = ?", code, code)

	var dto RequestDTO
	if err := db.Preload("Tracking").Where("tracking_id IN (?)", records).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentRequest", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRequestRepository) ListByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*shipment.Request, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Preload("Tracking").
		Where("driver_id = ?", driverID.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*shipment.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
