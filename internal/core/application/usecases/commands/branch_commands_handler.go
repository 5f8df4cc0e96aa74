package commands

import (
	"context"

	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
)

// CreateBranchCommandHandler stores new branches. A duplicate name is reported
// as errs.ErrConflict by the repository.
type CreateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

func NewCreateBranchCommandHandler(uowFactory BranchUoWFactory) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{uowFactory: uowFactory}
}

func (h CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) (*branch.Branch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := branch.NewBranch(kernel.NewUUID(), cmd.Name(), cmd.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BranchRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateBranchCommandHandler renames branches and replaces their address.
type UpdateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

func NewUpdateBranchCommandHandler(uowFactory BranchUoWFactory) UpdateBranchCommandHandler {
	return UpdateBranchCommandHandler{uowFactory: uowFactory}
}

func (h UpdateBranchCommandHandler) Handle(ctx context.Context, cmd UpdateBranchCommand) (*branch.Branch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BranchRepository()
	b, err := repo.Get(ctx, cmd.BranchID())
	if err != nil {
		return nil, err
	}

	if err = b.Update(cmd.Name(), cmd.Address()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBranchCommandHandler removes branches.
type DeleteBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

func NewDeleteBranchCommandHandler(uowFactory BranchUoWFactory) DeleteBranchCommandHandler {
	return DeleteBranchCommandHandler{uowFactory: uowFactory}
}

func (h DeleteBranchCommandHandler) Handle(ctx context.Context, cmd DeleteBranchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.BranchRepository().Delete(ctx, cmd.BranchID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
