// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	Record(ctx context.Context, record AuditRecord) error
	QueryRecords(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]AuditRecord, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, record AuditRecord) error {
	return s.repo.Append(ctx, record)
}

func (s *service) QueryRecords(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]AuditRecord, error) {
	return s.repo.Query(ctx, from, to, subjectID, resourceID)
}
