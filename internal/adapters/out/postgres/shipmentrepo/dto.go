// Package shipmentrepo persists shipment request aggregates.
package shipmentrepo

import (
	"time"

	"shipping/internal/adapters/out/postgres/trackingrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// RequestDTO is a row of the shipment_requests table. The tracking record lives
// in its own table and is preloaded on every read.
type RequestDTO struct {
	ID                 uuid.UUID              `gorm:"type:uuid;primaryKey"`
	CreatorID          uuid.UUID              `gorm:"type:uuid;not null;index"`
	SenderID           uuid.UUID              `gorm:"type:uuid;not null;index"`
	RecipientID        uuid.UUID              `gorm:"type:uuid;not null;index"`
	BranchID           uuid.UUID              `gorm:"type:uuid;not null;index"`
	PickupAddressID    *uuid.UUID             `gorm:"type:uuid"`
	DeliveryAddressID  uuid.UUID              `gorm:"type:uuid;not null"`
	Parcel             ParcelDTO              `gorm:"embedded;embeddedPrefix:parcel_"`
	TrackingID         uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex"`
	Tracking           trackingrepo.RecordDTO `gorm:"foreignKey:TrackingID;constraint:OnDelete:RESTRICT"`
	DriverID           *uuid.UUID             `gorm:"type:uuid;index"`
	ManagerID          *uuid.UUID             `gorm:"type:uuid;index"`
	ScheduledDate      string                 `gorm:"size:20"`
	TimeWindow         string                 `gorm:"size:50"`
	Status             string                 `gorm:"size:32;not null;index"`
	CancellationReason string                 `gorm:"size:500"`
	CreatedAt          time.Time              `gorm:"not null;index"`
	UpdatedAt          time.Time              `gorm:"autoUpdateTime:false"`
}

func (RequestDTO) TableName() string {
	return "shipment_requests"
}

// ParcelDTO holds the parcel columns. Dimensions are either all set or all null.
type ParcelDTO struct {
	WeightKg float64 `gorm:"not null"`
	Height   *float64
	Width    *float64
	Length   *float64
	Content  string `gorm:"size:300"`
	Category string `gorm:"size:100"`
}

func fromDomain(r *shipment.Request) RequestDTO {
	p := r.Parcel()
	parcel := ParcelDTO{
		WeightKg: p.WeightKg(),
		Content:  p.Content(),
		Category: p.Category(),
	}
	if d := p.Dimensions(); d != nil {
		parcel.Height, parcel.Width, parcel.Length = &d.Height, &d.Width, &d.Length
	}

	return RequestDTO{
		ID:                 r.ID().Bytes(),
		CreatorID:          r.CreatorID().Bytes(),
		SenderID:           r.SenderID().Bytes(),
		RecipientID:        r.RecipientID().Bytes(),
		BranchID:           r.BranchID().Bytes(),
		PickupAddressID:    kernel.OptionalBytes(r.PickupAddressID()),
		DeliveryAddressID:  r.DeliveryAddressID().Bytes(),
		Parcel:             parcel,
		TrackingID:         r.Tracking().ID().Bytes(),
		Tracking:           trackingrepo.FromDomain(r.Tracking()),
		DriverID:           kernel.OptionalBytes(r.DriverID()),
		ManagerID:          kernel.OptionalBytes(r.ManagerID()),
		ScheduledDate:      r.ScheduledDate(),
		TimeWindow:         r.TimeWindow(),
		Status:             r.Status().String(),
		CancellationReason: r.CancellationReason(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func toDomain(dto RequestDTO) (*shipment.Request, error) {
	ids := make([]kernel.UUID, 0, 6)
	for _, raw := range []uuid.UUID{
		dto.ID, dto.CreatorID, dto.SenderID, dto.RecipientID, dto.BranchID, dto.DeliveryAddressID,
	} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	pickupID, err := kernel.OptionalUUIDFromBytes(dto.PickupAddressID)
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.OptionalUUIDFromBytes(dto.DriverID)
	if err != nil {
		return nil, err
	}
	managerID, err := kernel.OptionalUUIDFromBytes(dto.ManagerID)
	if err != nil {
		return nil, err
	}

	var dims *shipment.Dimensions
	if dto.Parcel.Height != nil && dto.Parcel.Width != nil && dto.Parcel.Length != nil {
		dims = &shipment.Dimensions{
			Height: *dto.Parcel.Height,
			Width:  *dto.Parcel.Width,
			Length: *dto.Parcel.Length,
		}
	}
	parcel, err := shipment.NewParcel(dto.Parcel.WeightKg, dims, dto.Parcel.Content, dto.Parcel.Category)
	if err != nil {
		return nil, err
	}

	record, err := trackingrepo.ToDomain(dto.Tracking)
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreRequest(shipment.Snapshot{
		Draft: shipment.Draft{
			ID:                ids[0],
			CreatorID:         ids[1],
			SenderID:          ids[2],
			RecipientID:       ids[3],
			BranchID:          ids[4],
			PickupAddressID:   pickupID,
			DeliveryAddressID: ids[5],
			Parcel:            parcel,
			Tracking:          record,
			ScheduledDate:     dto.ScheduledDate,
			TimeWindow:        dto.TimeWindow,
			CreatedAt:         dto.CreatedAt,
		},
		DriverID:           driverID,
		ManagerID:          managerID,
		Status:             status,
		CancellationReason: dto.CancellationReason,
		UpdatedAt:          dto.UpdatedAt,
	})
}
