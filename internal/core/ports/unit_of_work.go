package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction; before Begin they
// run against the plain connection.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	AccountRepository() AccountRepository
	AddressRepository() AddressRepository
	BranchRepository() BranchRepository
	PartyRepository() PartyRepository
	ShipmentRequestRepository() ShipmentRequestRepository
	TrackingRepository() TrackingRepository
}
