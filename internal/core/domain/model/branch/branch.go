// Package branch models the company's physical branches.
package branch

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")

// Branch is a company location that receives and dispatches shipments.
//
// A branch exclusively owns its address: the address is not shared with the
// deduplicated address registry and disappears together with the branch.
//
// Invariants:
//   - name is non-empty (uniqueness is enforced by the store)
//   - the owned address is always present
type Branch struct {
	id      kernel.UUID
	name    string
	address *address.Address

	isConstructed bool
}

// NewBranch creates a branch together with its owned address.
//
// Example:
//
//	loc, _ := kernel.NewGeoPoint(4.60, -74.08)
//	b, err := branch.NewBranch(kernel.NewUUID(), "Centro", address.Details{
//	    Text: "Cra 7 # 12-34", City: "Bogotá", Location: &loc,
//	})
func NewBranch(id kernel.UUID, name string, details address.Details) (*Branch, error) {
	b := &Branch{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setAddress(kernel.NewUUID(), details),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBranch rebuilds a persisted branch with its stored address identity.
func RestoreBranch(id kernel.UUID, name string, addressID kernel.UUID, details address.Details) (*Branch, error) {
	b := &Branch{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setAddress(addressID, details),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

func (b *Branch) ID() kernel.UUID {
	return b.id
}

func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) Address() *address.Address {
	return b.address
}

// Location is a shortcut to the owned address coordinates; nil when not geocoded.
func (b *Branch) Location() *kernel.GeoPoint {
	return b.address.Location()
}

// Update renames the branch and replaces its owned address. The previous address
// is discarded; a fresh address identity is issued.
func (b *Branch) Update(name string, details address.Details) error {
	updated := &Branch{id: b.id, isConstructed: true}
	if err := errors.Join(
		updated.setName(name),
		updated.setAddress(kernel.NewUUID(), details),
	); err != nil {
		return err
	}

	b.name = updated.name
	b.address = updated.address
	return nil
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Branch) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Branch) setAddress(id kernel.UUID, details address.Details) error {
	a, err := address.NewAddress(id, details)
	if err != nil {
		return err
	}
	b.address = a
	return nil
}
