package commands

import (
	"errors"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrProvisionAccountCommandIsNotConstructed = errors.New(
	"ProvisionAccountCommand must be created via NewProvisionAccountCommand constructor",
)

// ProvisionAccountCommand copies an identity-store account into the shipping
// database, optionally affiliated with the branch a staff member works out of.
type ProvisionAccountCommand struct {
	account *account.Account

	guard guard.ConstructorGuard
}

func NewProvisionAccountCommand(
	id kernel.UUID,
	name string,
	role account.Role,
	branchID *kernel.UUID,
) (ProvisionAccountCommand, error) {
	a, err := account.NewAccount(id, name, role)
	if err != nil {
		return ProvisionAccountCommand{}, err
	}
	if branchID != nil {
		if err = a.AttachToBranch(*branchID); err != nil {
			return ProvisionAccountCommand{}, err
		}
	}

	return ProvisionAccountCommand{account: a, guard: guard.NewConstructorGuard()}, nil
}

func (c ProvisionAccountCommand) Validate() error {
	return c.guard.Validate(ErrProvisionAccountCommandIsNotConstructed)
}

func (c ProvisionAccountCommand) Account() *account.Account {
	return c.account
}
