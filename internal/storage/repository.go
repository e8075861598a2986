package storage

import (
	"errors"
	"time"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	CreateSession(s *game.Session) error
	// GetSessionByCode returns ErrNotFound for unknown codes.
	GetSessionByCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	// RecordDecision saves the session and appends d to its history in one
	// transaction.
	RecordDecision(s *game.Session, d *game.Decision) error
	// RecordResult saves the session and stores the finished playthrough in
	// one transaction.
	RecordResult(s *game.Session, r *game.Result) error
	ListDecisions(sessionID uint) ([]game.Decision, error)
	// DeleteIdleSessions soft-deletes sessions whose last activity is before
	// the cutoff, together with their decision history. Results are kept and
	// GetStats keeps counting the deleted rows.
	DeleteIdleSessions(cutoff time.Time) (int64, error)
	GetStats(topTokens int) (*game.Stats, error)
}
