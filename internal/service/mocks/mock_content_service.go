package mocks

import (
	"context"

	"backendservice/internal/model"
	"backendservice/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, data []byte) (*service.CreatedResource, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreatedResource), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context) ([]model.Content, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Content), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, id string) (*model.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Content), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, id string, data []byte) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *MockContentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentService) Random(ctx context.Context, size string) ([]byte, error) {
	args := m.Called(ctx, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockContentService) CreateRandom(ctx context.Context, size string) (*service.CreatedResource, error) {
	args := m.Called(ctx, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreatedResource), args.Error(1)
}

func (m *MockContentService) Export(ctx context.Context, id string) (*service.ExportResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
