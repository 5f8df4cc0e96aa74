package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ProvisionAccount handles POST /api/v1/accounts. It mirrors an account of the
// identity store so shipment requests can reference it.
func (s *Server) ProvisionAccount(c echo.Context) error {
	var req ProvisionAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := req.command()
	if err != nil {
		return err
	}

	provisioned, err := s.h.ProvisionAccount.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.InfoContext(c.Request().Context(), "account provisioned",
		"account_id", provisioned.ID().String(), "role", string(provisioned.Role()))
	return c.JSON(http.StatusCreated, toAccountResponse(provisioned))
}

func (r ProvisionAccountRequest) command() (commands.ProvisionAccountCommand, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return commands.ProvisionAccountCommand{}, err
	}

	var branchID *kernel.UUID
	if r.BranchID != "" {
		b, err := kernel.UUIDFromString(r.BranchID)
		if err != nil {
			return commands.ProvisionAccountCommand{}, err
		}
		branchID = &b
	}

	return commands.NewProvisionAccountCommand(id, r.Name, account.Role(r.Role), branchID)
}
