package service

import (
	"errors"
	"sync"
	"time"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/storage"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPackMismatch    = errors.New("session was started with a different scenario pack")
	ErrEmptyPack       = errors.New("scenario pack has no scenarios")
)

// SessionRepo is the storage surface the session operations need.
type SessionRepo interface {
	CreateSession(s *game.Session) error
	GetSessionByCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	RecordDecision(s *game.Session, d *game.Decision) error
	RecordResult(s *game.Session, r *game.Result) error
	ListDecisions(sessionID uint) ([]game.Decision, error)
}

func loadSession(repo SessionRepo, code string) (*game.Session, error) {
	s, err := repo.GetSessionByCode(code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Observer is told about a session after each successful transition. It
// runs while the session is still locked, so observers see transitions of
// one session in the order they were stored.
type Observer func(s *game.Session)

func (o Observer) notify(s *game.Session) {
	if o != nil {
		o(s)
	}
}

// now is UTC so stored timestamps compare correctly in SQLite.
var now = func() time.Time { return time.Now().UTC() }

// keyedMutex serialises work per session code so each session keeps a
// single writer while different sessions proceed in parallel.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

var sessionLocks keyedMutex
