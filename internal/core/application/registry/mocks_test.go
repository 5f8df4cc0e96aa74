package registry_test

import (
	"context"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
)

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

type MockCodeGenerator struct{ mock.Mock }

func (m *MockCodeGenerator) Generate() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}
