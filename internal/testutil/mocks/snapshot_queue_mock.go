package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/liveboard/internal/models"
)

// MockSnapshotQueue is a mock implementation of jobs.SnapshotQueue
type MockSnapshotQueue struct {
	mock.Mock
}

func (m *MockSnapshotQueue) EnqueueSnapshot(snapshot models.Snapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}
