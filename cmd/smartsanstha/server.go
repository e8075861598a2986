package main

import (
	"context"
	"time"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/service"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/storage"
)

// startPurgeScanner deletes idle sessions every interval until ctx is done.
func startPurgeScanner(ctx context.Context, repo storage.Repository, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				if _, err := service.PurgeIdleSessions(repo, t.UTC(), ttl); err != nil {
					logging.Error("purge scanner failed", err, nil)
				}
			}
		}
	}()
}
