package mocks

import (
	"context"

	"backendservice/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAssetResolver struct {
	mock.Mock
}

func (m *MockAssetResolver) Resolve(ctx context.Context, req model.TransferRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
