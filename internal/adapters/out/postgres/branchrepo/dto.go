// Package branchrepo persists branches. Each branch row carries its own address
// columns; branch addresses never enter the shared addresses table.
package branchrepo

import (
	"shipping/internal/adapters/out/postgres/addressrepo"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO is a row of the branches table.
type BranchDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name      string           `gorm:"size:150;not null;uniqueIndex:idx_branches_name"`
	AddressID uuid.UUID        `gorm:"type:uuid;not null"`
	Address   BranchAddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (BranchDTO) TableName() string {
	return "branches"
}

// BranchAddressDTO holds the owned address columns, stored with the address_ prefix.
type BranchAddressDTO struct {
	Text         string `gorm:"size:300"`
	City         string `gorm:"size:100"`
	Latitude     *float64
	Longitude    *float64
	Floor        string `gorm:"size:50"`
	Notes        string `gorm:"size:500"`
	Neighborhood string `gorm:"size:100"`
	PostalCode   string `gorm:"size:20"`
	Kind         string `gorm:"size:50"`
}

func fromDomain(b *branch.Branch) BranchDTO {
	a := b.Address()
	lat, lon := addressrepo.SplitLocation(a.Location())

	return BranchDTO{
		ID:        b.ID().Bytes(),
		Name:      b.Name(),
		AddressID: a.ID().Bytes(),
		Address: BranchAddressDTO{
			Text:         a.Text(),
			City:         a.City(),
			Latitude:     lat,
			Longitude:    lon,
			Floor:        a.Floor(),
			Notes:        a.Notes(),
			Neighborhood: a.Neighborhood(),
			PostalCode:   a.PostalCode(),
			Kind:         a.Kind(),
		},
	}
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewOptionalGeoPoint(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}

	return branch.RestoreBranch(id, dto.Name, addressID, address.Details{
		Text:         dto.Address.Text,
		City:         dto.Address.City,
		Location:     loc,
		Floor:        dto.Address.Floor,
		Notes:        dto.Address.Notes,
		Neighborhood: dto.Address.Neighborhood,
		PostalCode:   dto.Address.PostalCode,
		Kind:         dto.Address.Kind,
	})
}
