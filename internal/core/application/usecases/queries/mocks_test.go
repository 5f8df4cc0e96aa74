package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

func (m *MockShipmentReader) GetByTrackingCode(ctx context.Context, code string) (*shipment.Request, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

func (m *MockShipmentReader) ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Request, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Request), args.Error(1)
}

type MockBranchReader struct{ mock.Mock }

func (m *MockBranchReader) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

func (m *MockBranchReader) GetAll(ctx context.Context) ([]*branch.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*branch.Branch), args.Error(1)
}

type MockAccountReader struct{ mock.Mock }

func (m *MockAccountReader) ListByBranch(ctx context.Context, branchID kernel.UUID, role account.Role) ([]*account.Account, error) {
	args := m.Called(ctx, branchID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func newRequest(t *testing.T, status shipment.Status) *shipment.Request {
	t.Helper()

	parcel, err := shipment.NewParcel(1.2, nil, "", "")
	require.NoError(t, err)
	record, err := tracking.NewRecord(kernel.NewUUID(), "QWERTYUIOP", "QWERTYUIOPASDFGHJKLZXCVBNM", time.Now())
	require.NoError(t, err)

	req, err := shipment.RestoreRequest(shipment.Snapshot{
		Draft: shipment.Draft{
			ID:                kernel.NewUUID(),
			CreatorID:         kernel.NewUUID(),
			SenderID:          kernel.NewUUID(),
			RecipientID:       kernel.NewUUID(),
			BranchID:          kernel.NewUUID(),
			DeliveryAddressID: kernel.NewUUID(),
			Parcel:            parcel,
			Tracking:          record,
			CreatedAt:         time.Now(),
		},
		Status: status,
	})
	require.NoError(t, err)
	return req
}

func newBranch(t *testing.T, name string, lat, lon *float64) *branch.Branch {
	t.Helper()

	loc, err := kernel.NewOptionalGeoPoint(lat, lon)
	require.NoError(t, err)
	b, err := branch.NewBranch(kernel.NewUUID(), name, address.Details{Text: name + " 1", City: "Bogotá", Location: loc})
	require.NoError(t, err)
	return b
}

func ptr(v float64) *float64 {
	return &v
}
