package service

import (
	"context"
	"fmt"
	"math"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/pkg/logger"
)

// dashboardService aggregates counters from the catalogue and the object
// store into a single stats payload.
type dashboardService struct {
	artists     ArtistStats
	collections CollectionStats
	storage     StorageUsage
	quotaBytes  int64
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(artists ArtistStats, collections CollectionStats, storage StorageUsage, quotaBytes int64) DashboardServiceInterface {
	return &dashboardService{
		artists:     artists,
		collections: collections,
		storage:     storage,
		quotaBytes:  quotaBytes,
	}
}

// Stats builds the dashboard payload. Storage usage degrades to zero when
// the object store is unreachable; catalogue counters are authoritative.
func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	artistCount, err := s.artists.Count(ctx)
	if err != nil {
		return nil, err
	}

	collectionCount, err := s.collections.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalArtworks, err := s.artists.TotalArtworks(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		ArtistCount:     artistCount,
		CollectionCount: collectionCount,
		TotalArtworks:   totalArtworks,
		Storage: model.StorageStats{
			Used:  formatBytes(0),
			Total: formatQuota(s.quotaBytes),
		},
	}

	usedBytes, err := s.storage.TotalUsage(ctx)
	if err != nil {
		logger.Warn("failed to read storage usage", map[string]interface{}{
			"error": err.Error(),
		})
		return stats, nil
	}

	stats.Storage.Used = formatBytes(usedBytes)
	stats.Storage.Percentage = storagePercent(usedBytes, s.quotaBytes)

	return stats, nil
}

// storagePercent is capped at 100 even when usage exceeds the quota.
func storagePercent(used, quota int64) int {
	if quota <= 0 || used <= 0 {
		return 0
	}
	pct := int(math.Round(float64(used) / float64(quota) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func formatBytes(n int64) string {
	const (
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gb))
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mb))
	}
}

// formatQuota renders the configured quota without decimals, e.g. "10 GB".
func formatQuota(n int64) string {
	const gb = 1 << 30
	if n > 0 && n%gb == 0 {
		return fmt.Sprintf("%d GB", n/gb)
	}
	return formatBytes(n)
}
