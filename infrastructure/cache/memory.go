package cache

import (
	"context"
	"sync"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// MemorySnapshotCache é usado quando o Redis não está configurado
type MemorySnapshotCache struct {
	mu        sync.RWMutex
	snapshots map[string]*domain.ComparisonReport
}

func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{
		snapshots: make(map[string]*domain.ComparisonReport),
	}
}

func (c *MemorySnapshotCache) GetSnapshot(_ context.Context, viewerID int, accountID string) (*domain.ComparisonReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshots[snapshotKey("", viewerID, accountID)], nil
}

func (c *MemorySnapshotCache) SaveSnapshot(_ context.Context, viewerID int, report *domain.ComparisonReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshots[snapshotKey("", viewerID, report.AccountID)] = report
	return nil
}

func (c *MemorySnapshotCache) Close() error {
	return nil
}
