// Package addressrepo persists pickup and delivery addresses deduplicated by (text, city).
package addressrepo

import (
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO is a row of the addresses table.
type AddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Text         string    `gorm:"size:300;not null;uniqueIndex:idx_addresses_key,priority:1"`
	City         string    `gorm:"size:100;not null;default:'';uniqueIndex:idx_addresses_key,priority:2"`
	Latitude     *float64
	Longitude    *float64
	Floor        string `gorm:"size:50"`
	Notes        string `gorm:"size:500"`
	Neighborhood string `gorm:"size:100"`
	PostalCode   string `gorm:"size:20"`
	Kind         string `gorm:"size:50"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// SplitLocation maps optional coordinates onto a pair of nullable columns.
func SplitLocation(loc *kernel.GeoPoint) (*float64, *float64) {
	if loc == nil {
		return nil, nil
	}
	lat, lon := loc.Latitude(), loc.Longitude()
	return &lat, &lon
}

func fromDomain(a *address.Address) AddressDTO {
	lat, lon := SplitLocation(a.Location())
	return AddressDTO{
		ID:           a.ID().Bytes(),
		Text:         a.Text(),
		City:         a.City(),
		Latitude:     lat,
		Longitude:    lon,
		Floor:        a.Floor(),
		Notes:        a.Notes(),
		Neighborhood: a.Neighborhood(),
		PostalCode:   a.PostalCode(),
		Kind:         a.Kind(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewOptionalGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return address.NewAddress(id, address.Details{
		Text:         dto.Text,
		City:         dto.City,
		Location:     loc,
		Floor:        dto.Floor,
		Notes:        dto.Notes,
		Neighborhood: dto.Neighborhood,
		PostalCode:   dto.PostalCode,
		Kind:         dto.Kind,
	})
}
