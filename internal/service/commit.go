package service

import (
	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
)

// CommitToken applies the token with tokenID to the session's current
// scenario and records the decision. The returned session carries the
// debrief. Engine errors (engine.ErrNotPlaying, engine.ErrUnknownToken,
// engine.ErrUnknownScenario) are returned unchanged. notify may be nil.
func CommitToken(repo SessionRepo, pack *game.Pack, code, tokenID string, r engine.Roller, notify Observer) (*game.Session, error) {
	unlock := sessionLocks.lock(code)
	defer unlock()

	s, err := loadSession(repo, code)
	if err != nil {
		return nil, err
	}
	if s.PackName != pack.Name {
		return nil, ErrPackMismatch
	}

	before := s.State()
	next, err := engine.CommitByID(before, pack.Scenarios, tokenID, r)
	if err != nil {
		return nil, err
	}
	s.Apply(next)
	s.LastActivityAt = now()

	d := &game.Decision{
		Playthrough:   s.Playthrough,
		ScenarioID:    next.Debrief.ScenarioID,
		TokenID:       tokenID,
		FreedomBefore: before.Freedom,
		OrderBefore:   before.Order,
		FreedomAfter:  next.Freedom,
		OrderAfter:    next.Order,
	}
	if next.Debrief.Event != nil {
		d.EventDescription = next.Debrief.Event.Description
	}
	if err := repo.RecordDecision(s, d); err != nil {
		return nil, err
	}

	logging.Info("token committed", logging.Fields{
		constants.LogFieldSessionCode: code,
		constants.LogFieldScenarioID:  d.ScenarioID,
		constants.LogFieldTokenID:     tokenID,
		constants.LogFieldEvent:       d.EventDescription != "",
		constants.LogFieldFreedom:     s.Freedom,
		constants.LogFieldOrder:       s.Order,
	})
	notify.notify(s)
	return s, nil
}
