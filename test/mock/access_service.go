// test/mock/access_service.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/intentlock/ibac/audit"
	"github.com/intentlock/ibac/model"
	"github.com/intentlock/ibac/service"
)

// MockAccessService is a mock implementation of service.IAccessService
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) EvaluateAccess(ctx context.Context, req model.AccessRequest) (*service.EvaluationResult, error) {
	args := m.Called(ctx, req)
	if result := args.Get(0); result != nil {
		return result.(*service.EvaluationResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccessService) QueryAuditRecords(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]audit.AuditRecord, error) {
	args := m.Called(ctx, from, to, subjectID, resourceID)
	if records := args.Get(0); records != nil {
		return records.([]audit.AuditRecord), args.Error(1)
	}
	return nil, args.Error(1)
}
