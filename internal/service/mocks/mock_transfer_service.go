package mocks

import (
	"context"
	"encoding/json"

	"backendservice/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Accept(ctx context.Context, raw []byte) (string, error) {
	args := m.Called(ctx, raw)
	return args.String(0), args.Error(1)
}

func (m *MockTransferService) GetAsset(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockTransferService) GetContents(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockTransferService) RefreshAsset(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockTransferService) UpdateContents(ctx context.Context, id string, raw []byte) error {
	args := m.Called(ctx, id, raw)
	return args.Error(0)
}

func (m *MockTransferService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransferService) List(ctx context.Context) ([]model.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transfer), args.Error(1)
}
