package mocks

import (
	"context"
	"encoding/json"

	"backendservice/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentRepository) FindByID(ctx context.Context, id string) (*model.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, id string, data json.RawMessage) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) List(ctx context.Context) ([]model.Content, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Content), args.Error(1)
}
