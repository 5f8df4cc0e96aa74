package queries

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListBranchStaffQueryIsNotConstructed = errors.New(
	"ListBranchStaffQuery must be created via NewListBranchStaffQuery constructor",
)

// ListBranchStaffQuery lists the managers, drivers or other staff that work out of a branch.
type ListBranchStaffQuery struct {
	branchID kernel.UUID
	role     account.Role

	guard guard.ConstructorGuard
}

func NewListBranchStaffQuery(branchID kernel.UUID, role account.Role) (ListBranchStaffQuery, error) {
	if err := branchID.Validate(); err != nil {
		return ListBranchStaffQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return ListBranchStaffQuery{}, err
	}
	if !role.IsStaff() {
		return ListBranchStaffQuery{}, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("role %s does not work out of a branch", role))
	}

	return ListBranchStaffQuery{
		branchID: branchID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListBranchStaffQuery) Validate() error {
	return q.guard.Validate(ErrListBranchStaffQueryIsNotConstructed)
}

func (q ListBranchStaffQuery) BranchID() kernel.UUID {
	return q.branchID
}

func (q ListBranchStaffQuery) Role() account.Role {
	return q.role
}

type ListBranchStaffQueryHandler struct {
	branches BranchReader
	accounts AccountReader
}

func NewListBranchStaffQueryHandler(branches BranchReader, accounts AccountReader) ListBranchStaffQueryHandler {
	return ListBranchStaffQueryHandler{branches: branches, accounts: accounts}
}

// Handle returns errs.ErrObjectNotFound when the branch does not exist, so an
// unknown branch is not mistaken for one without staff.
func (h ListBranchStaffQueryHandler) Handle(ctx context.Context, q ListBranchStaffQuery) ([]*account.Account, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.branches.Get(ctx, q.BranchID()); err != nil {
		return nil, err
	}

	return h.accounts.ListByBranch(ctx, q.BranchID(), q.Role())
}
