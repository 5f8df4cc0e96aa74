// Package partyrepo persists senders and recipients deduplicated by identity document.
package partyrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// PartyDTO is a row of the parties table. The (document_type, document_number)
// pair is unique; a missing document type is stored as the empty string so the
// index also covers it.
type PartyDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"size:200"`
	DocumentType   string    `gorm:"size:20;not null;default:'';uniqueIndex:idx_parties_document,priority:1"`
	DocumentNumber string    `gorm:"size:50;not null;uniqueIndex:idx_parties_document,priority:2"`
	Phone          string    `gorm:"size:30"`
	CountryCode    string    `gorm:"size:3"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (PartyDTO) TableName() string {
	return "parties"
}

func fromDomain(p *party.Party) PartyDTO {
	return PartyDTO{
		ID:             p.ID().Bytes(),
		Name:           p.Name(),
		DocumentType:   p.DocumentType(),
		DocumentNumber: p.DocumentNumber(),
		Phone:          p.Phone(),
		CountryCode:    p.CountryCode(),
		CreatedAt:      p.CreatedAt(),
	}
}

func toDomain(dto PartyDTO) (*party.Party, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return party.RestoreParty(id, party.Details{
		Name:           dto.Name,
		DocumentType:   dto.DocumentType,
		DocumentNumber: dto.DocumentNumber,
		Phone:          dto.Phone,
		CountryCode:    dto.CountryCode,
	}, dto.CreatedAt)
}
