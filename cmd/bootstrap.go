package cmd

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ProvisionAdmin makes sure the configured administrator account exists.
// Running it against a database that already has the account is a no-op.
func (c *CompositionRoot) ProvisionAdmin(ctx context.Context) error {
	id, err := kernel.UUIDFromString(c.configs.AdminID)
	if err != nil {
		return fmt.Errorf("provision admin: %w", err)
	}

	cmd, err := commands.NewProvisionAccountCommand(id, c.configs.AdminName, account.RoleAdmin, nil)
	if err != nil {
		return fmt.Errorf("provision admin: %w", err)
	}

	_, err = c.CreateProvisionAccountCommandHandler().Handle(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrConflict):
		c.logger.InfoContext(ctx, "admin account already provisioned", "account_id", id.String())
		return nil
	case err != nil:
		return fmt.Errorf("provision admin: %w", err)
	}

	c.logger.InfoContext(ctx, "admin account provisioned", "account_id", id.String())
	return nil
}
