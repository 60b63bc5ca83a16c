package mocks

import (
	"context"
	"encoding/json"

	"backendservice/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, t *model.Transfer) (*model.Transfer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id string) (*model.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transfer), args.Error(1)
}

func (m *MockTransferRepository) UpdateAsset(ctx context.Context, id string, asset json.RawMessage) error {
	args := m.Called(ctx, id, asset)
	return args.Error(0)
}

func (m *MockTransferRepository) UpdateContents(ctx context.Context, id string, contents json.RawMessage) error {
	args := m.Called(ctx, id, contents)
	return args.Error(0)
}

func (m *MockTransferRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransferRepository) List(ctx context.Context) ([]model.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transfer), args.Error(1)
}
