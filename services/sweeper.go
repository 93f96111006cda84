package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// StartCacheSweeper schedules a periodic expiry sweep of the cache for the
// lifetime of the process. The caller stops the returned cron on shutdown.
func StartCacheSweeper(cache *ResponseCache, interval time.Duration) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		removed := cache.ClearExpired()
		if removed > 0 {
			slog.Info("Cleared expired cache entries",
				"removed", removed,
				"remaining", cache.Len(),
			)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule cache sweep: %w", err)
	}

	c.Start()
	slog.Info("Cache sweeper started", "interval", interval.String())

	return c, nil
}
