// Package party models the people that send or receive shipments.
//
// A party is identified by its document: the pair (document type, document number)
// is unique across the system. Parties are created on first reference and are never
// updated afterwards, so a later request that reuses the same document keeps the
// name and phone captured the first time.
package party

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Details carries the identity data supplied when a shipment request names a sender or recipient.
type Details struct {
	Name           string
	DocumentType   string
	DocumentNumber string
	Phone          string
	CountryCode    string
}

// DocumentKey is the natural key of a party.
type DocumentKey struct {
	Type   string
	Number string
}

// Key normalises the document fields into the lookup key. A missing document type
// becomes the empty string.
func (d Details) Key() DocumentKey {
	return DocumentKey{
		Type:   strings.TrimSpace(d.DocumentType),
		Number: strings.TrimSpace(d.DocumentNumber),
	}
}

// Validate reports ErrValueIsRequired when the document number is absent.
func (d Details) Validate() error {
	if d.Key().Number == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}
	return nil
}

// Party is a sender or recipient identity.
type Party struct {
	id          kernel.UUID
	name        string
	document    DocumentKey
	phone       string
	countryCode string
	createdAt   time.Time

	isConstructed bool
}

// NewParty creates a party from caller supplied details.
//
// Returns ErrValueIsRequired when details has no document number.
func NewParty(id kernel.UUID, details Details, createdAt time.Time) (*Party, error) {
	if err := errors.Join(id.Validate(), details.Validate()); err != nil {
		return nil, err
	}

	return &Party{
		id:            id,
		name:          strings.TrimSpace(details.Name),
		document:      details.Key(),
		phone:         strings.TrimSpace(details.Phone),
		countryCode:   strings.TrimSpace(details.CountryCode),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreParty rebuilds a persisted party.
func RestoreParty(id kernel.UUID, details Details, createdAt time.Time) (*Party, error) {
	return NewParty(id, details, createdAt)
}

func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

func (p *Party) ID() kernel.UUID {
	return p.id
}

func (p *Party) Name() string {
	return p.name
}

func (p *Party) DocumentType() string {
	return p.document.Type
}

func (p *Party) DocumentNumber() string {
	return p.document.Number
}

func (p *Party) Key() DocumentKey {
	return p.document
}

func (p *Party) Phone() string {
	return p.phone
}

func (p *Party) CountryCode() string {
	return p.countryCode
}

func (p *Party) CreatedAt() time.Time {
	return p.createdAt
}
