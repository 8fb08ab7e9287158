// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adaptivsec/vigil/api/model"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordEvent(ctx context.Context, event model.SimulationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditService) QueryEvents(ctx context.Context, from, to time.Time, eventType string) ([]model.SimulationEvent, error) {
	args := m.Called(ctx, from, to, eventType)
	return args.Get(0).([]model.SimulationEvent), args.Error(1)
}
