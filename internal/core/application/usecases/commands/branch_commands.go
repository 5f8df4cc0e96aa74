package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateBranchCommandIsNotConstructed = errors.New(
		"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
	)
	ErrUpdateBranchCommandIsNotConstructed = errors.New(
		"UpdateBranchCommand must be created via NewUpdateBranchCommand constructor",
	)
	ErrDeleteBranchCommandIsNotConstructed = errors.New(
		"DeleteBranchCommand must be created via NewDeleteBranchCommand constructor",
	)
)

// CreateBranchCommand registers a new branch with its own address.
type CreateBranchCommand struct {
	name    string
	address address.Details

	guard guard.ConstructorGuard
}

func NewCreateBranchCommand(name string, details address.Details) (CreateBranchCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateBranchCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateBranchCommand{
		name:    name,
		address: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

func (c CreateBranchCommand) Name() string {
	return c.name
}

func (c CreateBranchCommand) Address() address.Details {
	return c.address
}

// UpdateBranchCommand renames a branch and replaces its address.
type UpdateBranchCommand struct {
	branchID kernel.UUID
	name     string
	address  address.Details

	guard guard.ConstructorGuard
}

func NewUpdateBranchCommand(branchID kernel.UUID, name string, details address.Details) (UpdateBranchCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(branchID.Validate(), nameErr); err != nil {
		return UpdateBranchCommand{}, err
	}

	return UpdateBranchCommand{
		branchID: branchID,
		name:     name,
		address:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBranchCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBranchCommandIsNotConstructed)
}

func (c UpdateBranchCommand) BranchID() kernel.UUID {
	return c.branchID
}

func (c UpdateBranchCommand) Name() string {
	return c.name
}

func (c UpdateBranchCommand) Address() address.Details {
	return c.address
}

// DeleteBranchCommand removes a branch and its owned address.
type DeleteBranchCommand struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteBranchCommand(branchID kernel.UUID) (DeleteBranchCommand, error) {
	if err := branchID.Validate(); err != nil {
		return DeleteBranchCommand{}, err
	}

	return DeleteBranchCommand{branchID: branchID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteBranchCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBranchCommandIsNotConstructed)
}

func (c DeleteBranchCommand) BranchID() kernel.UUID {
	return c.branchID
}
