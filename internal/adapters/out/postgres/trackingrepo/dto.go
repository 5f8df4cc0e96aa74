// Package trackingrepo persists issued tracking records.
package trackingrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// RecordDTO is a row of the tracking_records table. Both codes are unique on
// their own.
type RecordDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	InternalCode string    `gorm:"size:10;not null;uniqueIndex:idx_tracking_internal_code"`
	PublicCode   string    `gorm:"size:26;not null;uniqueIndex:idx_tracking_public_code"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (RecordDTO) TableName() string {
	return "tracking_records"
}

// FromDomain is shared with the shipment request mapping, which preloads records.
func FromDomain(r *tracking.Record) RecordDTO {
	return RecordDTO{
		ID:           r.ID().Bytes(),
		InternalCode: r.InternalCode(),
		PublicCode:   r.PublicCode(),
		CreatedAt:    r.CreatedAt(),
	}
}

func ToDomain(dto RecordDTO) (*tracking.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return tracking.NewRecord(id, dto.InternalCode, dto.PublicCode, dto.CreatedAt)
}
