package ports

import (
	"context"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
)

// AccountRepository is the local copy of the identity store.
type AccountRepository interface {
	// Get returns errs.ErrObjectNotFound when no account has the id.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// Add registers an account. Returns errs.ErrConflict when the id is taken.
	Add(ctx context.Context, a *account.Account) error

	// ListByBranch returns the accounts with the given role affiliated with a branch, ordered by name.
	ListByBranch(ctx context.Context, branchID kernel.UUID, role account.Role) ([]*account.Account, error)
}
