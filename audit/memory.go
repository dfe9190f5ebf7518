// audit/memory.go
package audit

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is the default in-process append-only audit log. Appends
// are serialized by a mutex so concurrent records never interleave; there is
// no cross-record ordering guarantee.
type MemoryRepository struct {
	mu      sync.Mutex
	records []AuditRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(ctx context.Context, record AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *MemoryRepository) Query(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []AuditRecord
	for _, rec := range r.records {
		if rec.IssuedAt.Before(from) || rec.IssuedAt.After(to) {
			continue
		}
		if subjectID != "" && rec.SubjectID != subjectID {
			continue
		}
		if resourceID != "" && rec.ResourceID != resourceID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
