package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/dedupe"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
)

// ScenarioView is a scenario as shown to the player. Random events stay
// hidden until they fire.
type ScenarioView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tokens      []game.Token `json:"tokens"`
}

// View is the read model of a session returned to clients and streamed to
// subscribers.
type View struct {
	Code           string              `json:"code"`
	PackName       string              `json:"pack_name"`
	Playthrough    int                 `json:"playthrough"`
	Freedom        int                 `json:"freedom"`
	Order          int                 `json:"order"`
	Phase          game.Phase          `json:"phase"`
	ScenarioIndex  int                 `json:"scenario_index"`
	ScenarioCount  int                 `json:"scenario_count"`
	Scenario       *ScenarioView       `json:"scenario,omitempty"`
	Debrief        *game.Debrief       `json:"debrief,omitempty"`
	Verdict        *engine.VerdictInfo `json:"verdict,omitempty"`
	LastActivityAt time.Time           `json:"last_activity_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
}

// BuildView renders s against pack. The current scenario is omitted once
// the playthrough has ended.
func BuildView(s *game.Session, pack *game.Pack) View {
	v := View{
		Code:           s.Code,
		PackName:       s.PackName,
		Playthrough:    s.Playthrough,
		Freedom:        s.Freedom,
		Order:          s.Order,
		Phase:          s.Phase,
		ScenarioIndex:  s.ScenarioIndex,
		ScenarioCount:  pack.Len(),
		Debrief:        s.Debrief,
		LastActivityAt: s.LastActivityAt,
		CompletedAt:    s.CompletedAt,
	}
	if s.Phase != game.PhaseEnd {
		if sc, ok := pack.Scenario(s.ScenarioIndex); ok {
			v.Scenario = &ScenarioView{ID: sc.ID, Title: sc.Title, Description: sc.Description, Tokens: sc.Tokens}
		}
	}
	if info, ok := engine.Describe(s.Verdict); ok {
		v.Verdict = &info
	}
	return v
}

// StartSession creates a new playthrough of pack at the initial state.
func StartSession(repo SessionRepo, pack *game.Pack) (*game.Session, error) {
	if pack.Len() == 0 {
		return nil, ErrEmptyPack
	}
	s := &game.Session{
		Code:           uuid.NewString(),
		PackName:       pack.Name,
		Playthrough:    1,
		LastActivityAt: now(),
	}
	s.Apply(engine.Restart())
	if err := repo.CreateSession(s); err != nil {
		return nil, err
	}
	logging.Info("session started", logging.Fields{constants.LogFieldSessionCode: s.Code, constants.LogFieldPack: s.PackName})
	return s, nil
}

// GetSession loads a session by code. Concurrent loads of the same code
// share one database read; each caller gets its own copy. The read holds
// the session lock, so a load never straddles a write and a caller that
// arrives after a write has returned always sees it.
func GetSession(repo SessionRepo, code string) (*game.Session, error) {
	v, err, _ := dedupe.SessionGroup.Do(code, func() (interface{}, error) {
		unlock := sessionLocks.lock(code)
		defer unlock()
		return loadSession(repo, code)
	})
	if err != nil {
		return nil, err
	}
	cp := *v.(*game.Session)
	return &cp, nil
}

// Observe loads a session and, while no transition can run, calls attach.
// Observers registered in attach therefore miss no transition after the
// returned snapshot and receive none from before it. attach is not called
// when the load fails.
func Observe(repo SessionRepo, code string, attach func()) (*game.Session, error) {
	unlock := sessionLocks.lock(code)
	defer unlock()
	s, err := loadSession(repo, code)
	if err != nil {
		return nil, err
	}
	attach()
	return s, nil
}

// History returns the decisions recorded for a session, oldest first.
func History(repo SessionRepo, code string) ([]game.Decision, error) {
	s, err := loadSession(repo, code)
	if err != nil {
		return nil, err
	}
	return repo.ListDecisions(s.ID)
}
