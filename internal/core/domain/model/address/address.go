// Package address models physical addresses used for pickup, delivery and branch locations.
package address

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Details is the caller supplied description of an address. Everything except
// Text and City is optional; empty strings mean "not given".
type Details struct {
	Text         string
	City         string
	Location     *kernel.GeoPoint
	Floor        string
	Notes        string
	Neighborhood string
	PostalCode   string
	Kind         string
}

// Key is the natural key of a deduplicated address.
type Key struct {
	Text string
	City string
}

func (d Details) Key() Key {
	return Key{
		Text: strings.TrimSpace(d.Text),
		City: strings.TrimSpace(d.City),
	}
}

// Address is immutable once created.
type Address struct {
	id      kernel.UUID
	details Details

	isConstructed bool
}

// NewAddress creates an address. Only the identifier and, when present, the
// coordinates are validated; free-text fields are stored as given.
func NewAddress(id kernel.UUID, details Details) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if details.Location != nil {
		if err := details.Location.Validate(); err != nil {
			return nil, err
		}
		loc := *details.Location
		details.Location = &loc
	}

	key := details.Key()
	details.Text = key.Text
	details.City = key.City

	return &Address{id: id, details: details, isConstructed: true}, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

func (a *Address) Key() Key {
	return Key{Text: a.details.Text, City: a.details.City}
}

func (a *Address) Text() string {
	return a.details.Text
}

func (a *Address) City() string {
	return a.details.City
}

// Location returns a copy of the coordinates, or nil when the address was not geocoded.
func (a *Address) Location() *kernel.GeoPoint {
	if a.details.Location == nil {
		return nil
	}
	loc := *a.details.Location
	return &loc
}

func (a *Address) Floor() string {
	return a.details.Floor
}

func (a *Address) Notes() string {
	return a.details.Notes
}

func (a *Address) Neighborhood() string {
	return a.details.Neighborhood
}

func (a *Address) PostalCode() string {
	return a.details.PostalCode
}

func (a *Address) Kind() string {
	return a.details.Kind
}

// Details returns the full description, suitable for building a copy.
func (a *Address) Details() Details {
	d := a.details
	d.Location = a.Location()
	return d
}
