package ports

import (
	"context"

	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
)

// BranchRepository stores branches together with their owned address.
type BranchRepository interface {
	// Add returns errs.ErrConflict when the branch name is taken.
	Add(ctx context.Context, b *branch.Branch) error

	// Update returns errs.ErrObjectNotFound for an unknown branch and
	// errs.ErrConflict when renaming onto an existing name.
	Update(ctx context.Context, b *branch.Branch) error

	// Delete removes the branch and its address.
	// Returns errs.ErrObjectNotFound for an unknown branch.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetAll returns every branch ordered by name, then id.
	GetAll(ctx context.Context) ([]*branch.Branch, error)
}
