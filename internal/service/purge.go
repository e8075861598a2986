package service

import (
	"time"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
)

// PurgeIdleSessions deletes sessions with no activity within ttl of at.
// Finished-playthrough results are kept so stats survive the purge.
func PurgeIdleSessions(repo interface {
	DeleteIdleSessions(cutoff time.Time) (int64, error)
}, at time.Time, ttl time.Duration) (int64, error) {
	n, err := repo.DeleteIdleSessions(at.Add(-ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logging.Info("idle sessions purged", logging.Fields{constants.LogFieldCount: n})
	}
	return n, nil
}
