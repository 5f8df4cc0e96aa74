// Package queries contains read-only operations of the shipping core.
// Aggregate lookups go through repository readers; list projections read the
// database directly.
package queries

import (
	"context"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

type (
	// ShipmentReader is the read side of ports.ShipmentRequestRepository.
	ShipmentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error)
		GetByTrackingCode(ctx context.Context, code string) (*shipment.Request, error)
		ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Request, error)
	}

	// BranchReader is the read side of ports.BranchRepository.
	BranchReader interface {
		Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)
		GetAll(ctx context.Context) ([]*branch.Branch, error)
	}

	// AccountReader is the read side of ports.AccountRepository.
	AccountReader interface {
		ListByBranch(ctx context.Context, branchID kernel.UUID, role account.Role) ([]*account.Account, error)
	}
)
