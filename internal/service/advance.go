package service

import (
	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
)

// AdvanceSession dismisses the debrief. Past the last scenario the
// playthrough ends: the verdict is stamped and a result row is stored.
func AdvanceSession(repo SessionRepo, pack *game.Pack, code string, notify Observer) (*game.Session, error) {
	unlock := sessionLocks.lock(code)
	defer unlock()

	s, err := loadSession(repo, code)
	if err != nil {
		return nil, err
	}
	if s.PackName != pack.Name {
		return nil, ErrPackMismatch
	}

	next, err := engine.AdvanceFrom(s.State(), pack.Len())
	if err != nil {
		return nil, err
	}
	ts := now()
	s.Apply(next)
	s.LastActivityAt = ts

	if next.Phase != game.PhaseEnd {
		if err := repo.UpdateSession(s); err != nil {
			return nil, err
		}
		notify.notify(s)
		return s, nil
	}

	s.Verdict = engine.Judge(next.Freedom, next.Order)
	s.CompletedAt = &ts
	res := &game.Result{
		Playthrough: s.Playthrough,
		PackName:    s.PackName,
		Verdict:     s.Verdict,
		Freedom:     s.Freedom,
		Order:       s.Order,
	}
	if err := repo.RecordResult(s, res); err != nil {
		return nil, err
	}
	logging.Info("playthrough finished", logging.Fields{
		constants.LogFieldSessionCode: code,
		constants.LogFieldVerdict:     s.Verdict,
		constants.LogFieldFreedom:     s.Freedom,
		constants.LogFieldOrder:       s.Order,
	})
	notify.notify(s)
	return s, nil
}

// RestartSession resets the session to the initial state from any phase and
// starts a new playthrough. The session is rebound to pack, which lets a
// session started under an older pack continue after a pack change.
func RestartSession(repo SessionRepo, pack *game.Pack, code string, notify Observer) (*game.Session, error) {
	unlock := sessionLocks.lock(code)
	defer unlock()

	s, err := loadSession(repo, code)
	if err != nil {
		return nil, err
	}
	if pack.Len() == 0 {
		return nil, ErrEmptyPack
	}
	s.Apply(engine.Restart())
	s.PackName = pack.Name
	s.Playthrough++
	s.Verdict = game.VerdictNone
	s.CompletedAt = nil
	s.LastActivityAt = now()
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	notify.notify(s)
	return s, nil
}
