package commands

import (
	"context"

	"shipping/internal/core/domain/model/account"
)

// ProvisionAccountCommandHandler stores a new account. An id already in use is
// reported as errs.ErrConflict; an unknown branch as errs.ErrObjectNotFound.
type ProvisionAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewProvisionAccountCommandHandler(uowFactory AccountUoWFactory) ProvisionAccountCommandHandler {
	return ProvisionAccountCommandHandler{uowFactory: uowFactory}
}

func (h ProvisionAccountCommandHandler) Handle(ctx context.Context, cmd ProvisionAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	a := cmd.Account()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if branchID := a.BranchID(); branchID != nil {
		if _, err := uow.BranchRepository().Get(ctx, *branchID); err != nil {
			return nil, err
		}
	}

	if err := uow.AccountRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
