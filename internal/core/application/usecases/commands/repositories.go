// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	ShipmentRequestRepoFactory interface {
		ShipmentRequestRepository() ports.ShipmentRequestRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// FilingUoW spans every repository written while filing a new shipment request.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sender, err := registry.NewPartyRegistry(uow.PartyRepository()).FindOrCreate(ctx, details)
	//   // ... addresses, tracking record, request
	//
	//   err = uow.Commit(ctx)
	FilingUoW interface {
		TxManager
		AccountRepoFactory
		AddressRepoFactory
		BranchRepoFactory
		PartyRepoFactory
		ShipmentRequestRepoFactory
		TrackingRepoFactory
	}

	FilingUoWFactory interface {
		Create() FilingUoW
	}

	// AssignmentUoW validates staff accounts and updates a request.
	AssignmentUoW interface {
		TxManager
		AccountRepoFactory
		ShipmentRequestRepoFactory
	}

	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// RequestUoW manages transactions for request-only changes such as status updates.
	RequestUoW interface {
		TxManager
		ShipmentRequestRepoFactory
	}

	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// BranchUoW manages transactions for branch administration.
	BranchUoW interface {
		TxManager
		BranchRepoFactory
	}

	BranchUoWFactory interface {
		Create() BranchUoW
	}

	// AccountUoW provisions accounts and checks the branch they are attached to.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
		BranchRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
