// Package account models the staff and client accounts that shipment requests reference.
// Accounts are owned by an external identity store; the shipping core only reads them
// to check that a creator, manager or driver reference points at something real.
package account

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Role is the function an account performs in the logistics company.
type Role string

const (
	RoleClient  Role = "CLIENT"
	RoleClerk   Role = "CLERK"
	RoleManager Role = "MANAGER"
	RoleDriver  Role = "DRIVER"
	RoleAnalyst Role = "ANALYST"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleClerk, RoleManager, RoleDriver, RoleAnalyst, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// IsStaff reports whether accounts with this role work out of a branch.
func (r Role) IsStaff() bool {
	switch r {
	case RoleClerk, RoleManager, RoleDriver, RoleAnalyst:
		return true
	default:
		return false
	}
}

// Account is a read model of a user known to the identity store.
type Account struct {
	id       kernel.UUID
	name     string
	role     Role
	branchID *kernel.UUID

	isConstructed bool
}

// NewAccount builds an account from trusted identity data.
func NewAccount(id kernel.UUID, name string, role Role) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Role() Role {
	return a.role
}

// BranchID is the branch a staff account works out of, nil when unaffiliated.
func (a *Account) BranchID() *kernel.UUID {
	return a.branchID
}

// AttachToBranch affiliates a staff account with a branch.
// Clients and admins are never affiliated.
func (a *Account) AttachToBranch(branchID kernel.UUID) error {
	if !a.role.IsStaff() {
		return errs.NewValueIsInvalidErrorWithCause("branchId",
			fmt.Errorf("role %s does not work out of a branch", a.role))
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	a.branchID = &branchID
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
