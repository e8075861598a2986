package api

import (
	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/live"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/storage"
)

// SessionHandler groups all session-related HTTP handlers.
type SessionHandler struct {
	repo   storage.Repository
	pack   *game.Pack
	hub    *live.Hub
	roller engine.Roller
}

// NewSessionHandler creates a handler serving pack. A nil roller uses
// engine.DefaultRoller.
func NewSessionHandler(repo storage.Repository, pack *game.Pack, hub *live.Hub, roller engine.Roller) *SessionHandler {
	if roller == nil {
		roller = engine.DefaultRoller
	}
	if hub == nil {
		hub = live.NewHub()
	}
	return &SessionHandler{repo: repo, pack: pack, hub: hub, roller: roller}
}
