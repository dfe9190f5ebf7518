// audit/memory_test.go
package audit_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentlock/ibac/audit"
)

func TestMemoryRepositoryAppendAndQuery(t *testing.T) {
	repo := audit.NewMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	records := []audit.AuditRecord{
		{EventID: "e1", SubjectID: "alice", ResourceID: "fr-1", Decision: "grant", IssuedAt: now},
		{EventID: "e2", SubjectID: "bob", ResourceID: "fr-1", Decision: "grant", IssuedAt: now.Add(time.Minute)},
		{EventID: "e3", SubjectID: "alice", ResourceID: "logs-1", Decision: "grant", IssuedAt: now.Add(2 * time.Minute)},
	}
	for _, rec := range records {
		require.NoError(t, repo.Append(ctx, rec))
	}

	t.Run("filter by subject", func(t *testing.T) {
		got, err := repo.Query(ctx, now.Add(-time.Hour), now.Add(time.Hour), "alice", "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filter by subject and resource", func(t *testing.T) {
		got, err := repo.Query(ctx, now.Add(-time.Hour), now.Add(time.Hour), "alice", "fr-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e1", got[0].EventID)
	})

	t.Run("time window excludes records", func(t *testing.T) {
		got, err := repo.Query(ctx, now.Add(90*time.Second), now.Add(time.Hour), "", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e3", got[0].EventID)
	})
}

func TestMemoryRepositoryConcurrentAppends(t *testing.T) {
	repo := audit.NewMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, audit.AuditRecord{
				EventID:   fmt.Sprintf("e%d", i),
				SubjectID: "alice",
				IssuedAt:  now,
			})
		}(i)
	}
	wg.Wait()

	got, err := repo.Query(ctx, now.Add(-time.Minute), now.Add(time.Minute), "", "")
	require.NoError(t, err)
	assert.Len(t, got, 50)

	// Each record survived whole.
	seen := make(map[string]bool)
	for _, rec := range got {
		assert.NotEmpty(t, rec.EventID)
		assert.False(t, seen[rec.EventID])
		seen[rec.EventID] = true
	}
}
