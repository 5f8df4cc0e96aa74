package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) ListByBranch(ctx context.Context, branchID kernel.UUID, role account.Role) ([]*account.Account, error) {
	args := m.Called(ctx, branchID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetAll(ctx context.Context) ([]*branch.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*branch.Branch), args.Error(1)
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) Add(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindByDocument(ctx context.Context, key party.DocumentKey) (*party.Party, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressRepository) FindByKey(ctx context.Context, key address.Key) (*address.Address, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, r *tracking.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Record), args.Error(1)
}

func (m *MockTrackingRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockShipmentRequestRepository struct{ mock.Mock }

func (m *MockShipmentRequestRepository) Add(ctx context.Context, r *shipment.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockShipmentRequestRepository) Update(ctx context.Context, r *shipment.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockShipmentRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

func (m *MockShipmentRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

func (m *MockShipmentRequestRepository) GetByTrackingCode(ctx context.Context, code string) (*shipment.Request, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

func (m *MockShipmentRequestRepository) ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Request, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Request), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

func (m *MockUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

func (m *MockUoW) PartyRepository() ports.PartyRepository {
	args := m.Called()
	return args.Get(0).(ports.PartyRepository)
}

func (m *MockUoW) ShipmentRequestRepository() ports.ShipmentRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRequestRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type filingFactory struct{ uow *MockUoW }

func (f filingFactory) Create() commands.FilingUoW { return f.uow }

type assignmentFactory struct{ uow *MockUoW }

func (f assignmentFactory) Create() commands.AssignmentUoW { return f.uow }

type requestFactory struct{ uow *MockUoW }

func (f requestFactory) Create() commands.RequestUoW { return f.uow }

type branchFactory struct{ uow *MockUoW }

func (f branchFactory) Create() commands.BranchUoW { return f.uow }

type accountFactory struct{ uow *MockUoW }

func (f accountFactory) Create() commands.AccountUoW { return f.uow }

// fixedCodes always returns the same tracking codes.
type fixedCodes struct{ public string }

func (f fixedCodes) Generate() (string, string, error) {
	return f.public[:tracking.InternalCodeLength], f.public, nil
}

func newAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	a, err := account.NewAccount(kernel.NewUUID(), "staff "+string(role), role)
	require.NoError(t, err)
	return a
}

func newPendingRequest(t *testing.T) *shipment.Request {
	t.Helper()

	parcel, err := shipment.NewParcel(1.2, nil, "", "")
	require.NoError(t, err)
	record, err := tracking.NewRecord(kernel.NewUUID(), "QWERTYUIOP", "QWERTYUIOPASDFGHJKLZXCVBNM", time.Now())
	require.NoError(t, err)

	req, err := shipment.NewRequest(shipment.Draft{
		ID:                kernel.NewUUID(),
		CreatorID:         kernel.NewUUID(),
		SenderID:          kernel.NewUUID(),
		RecipientID:       kernel.NewUUID(),
		BranchID:          kernel.NewUUID(),
		DeliveryAddressID: kernel.NewUUID(),
		Parcel:            parcel,
		Tracking:          record,
		CreatedAt:         time.Now(),
	})
	require.NoError(t, err)
	return req
}
