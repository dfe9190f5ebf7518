// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/intentlock/ibac/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, record audit.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditService) QueryRecords(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]audit.AuditRecord, error) {
	args := m.Called(ctx, from, to, subjectID, resourceID)
	return args.Get(0).([]audit.AuditRecord), args.Error(1)
}
