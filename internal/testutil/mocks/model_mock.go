package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/liveboard/internal/features"
)

// MockModel is a mock implementation of predictor.Model
type MockModel struct {
	mock.Mock
}

func (m *MockModel) Predict(ctx context.Context, input *features.Tensor) ([]float32, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockModel) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockMoveRanker is a mock implementation of services.MoveRanker
type MockMoveRanker struct {
	mock.Mock
}

func (m *MockMoveRanker) Rank(ctx context.Context, input *features.Tensor) ([]string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
