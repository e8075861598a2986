package game

import (
	"time"

	"gorm.io/gorm"
)

// Meter bounds. Both meters start at the midpoint and saturate at the edges.
const (
	MeterMin     = 0
	MeterMax     = 100
	MeterDefault = 50
)

// TokensPerScenario is the number of choices every scenario offers.
const TokensPerScenario = 3

// Phase is the step of a playthrough the player is in.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseDebrief Phase = "debrief"
	PhaseEnd     Phase = "end"
)

// Effect is a signed change applied to the two balance meters.
type Effect struct {
	Freedom int `json:"freedom" yaml:"freedom"`
	Order   int `json:"order" yaml:"order"`
}

// Token is one policy choice offered by a scenario.
type Token struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Effect      Effect `json:"effect"`
	Explanation string `json:"explanation"`
}

// RandomEvent is an extra consequence that may fire after a token is
// committed. Probability is in [0,1].
type RandomEvent struct {
	Probability float64 `json:"probability"`
	Effect      Effect  `json:"effect"`
	Description string  `json:"description"`
}

// Scenario is one decision round.
type Scenario struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tokens      []Token       `json:"tokens"`
	Events      []RandomEvent `json:"events"`
}

// Token returns the offered token with the given id.
func (s Scenario) Token(id string) (Token, bool) {
	for _, t := range s.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

// Pack is the ordered list of scenarios a playthrough walks through.
type Pack struct {
	Name      string     `json:"name"`
	Scenarios []Scenario `json:"scenarios"`
}

func (p *Pack) Len() int { return len(p.Scenarios) }

// Scenario returns the scenario at index i.
func (p *Pack) Scenario(i int) (Scenario, bool) {
	if i < 0 || i >= len(p.Scenarios) {
		return Scenario{}, false
	}
	return p.Scenarios[i], true
}

// Debrief summarises the outcome of the last committed token. It only
// lives between a commit and the following advance.
type Debrief struct {
	ScenarioID string       `json:"scenario_id"`
	Token      Token        `json:"token"`
	Event      *RandomEvent `json:"event,omitempty"`
	Freedom    int          `json:"freedom"`
	Order      int          `json:"order"`
}

// State is the whole mutable game value. Engine operations take a State and
// return the next one.
type State struct {
	Freedom       int      `json:"freedom"`
	Order         int      `json:"order"`
	ScenarioIndex int      `json:"scenario_index"`
	Phase         Phase    `json:"phase"`
	Debrief       *Debrief `json:"debrief,omitempty"`
}

// Verdict is the end-of-game reading of the final meters.
type Verdict string

const (
	VerdictNone        Verdict = ""
	VerdictBalanced    Verdict = "balanced"
	VerdictFreedomTilt Verdict = "freedom_tilt"
	VerdictOrderTilt   Verdict = "order_tilt"
	VerdictFragile     Verdict = "fragile"
)

// Session is a persisted playthrough addressed by its public code.
type Session struct {
	gorm.Model
	Code          string   `json:"code" gorm:"uniqueIndex"`
	PackName      string   `json:"pack_name"`
	Freedom       int      `json:"freedom"`
	Order         int      `json:"order"`
	ScenarioIndex int      `json:"scenario_index"`
	Phase         Phase    `json:"phase"`
	Debrief       *Debrief `json:"debrief,omitempty" gorm:"serializer:json"`
	// Playthrough counts restarts; the first run is 1.
	Playthrough    int        `json:"playthrough"`
	Verdict        Verdict    `json:"verdict"`
	LastActivityAt time.Time  `json:"last_activity_at" gorm:"index"`
	CompletedAt    *time.Time `json:"completed_at"`
	Decisions      []Decision `json:"-"`
}

// Store playthroughs in a dedicated table so the name says what it holds.
func (Session) TableName() string { return "play_sessions" }

// State extracts the engine state from the persisted row.
func (s *Session) State() State {
	return State{
		Freedom:       s.Freedom,
		Order:         s.Order,
		ScenarioIndex: s.ScenarioIndex,
		Phase:         s.Phase,
		Debrief:       s.Debrief,
	}
}

// Apply copies an engine state into the persisted row.
func (s *Session) Apply(st State) {
	s.Freedom = st.Freedom
	s.Order = st.Order
	s.ScenarioIndex = st.ScenarioIndex
	s.Phase = st.Phase
	s.Debrief = st.Debrief
}

// Decision is one committed token in a session's history.
type Decision struct {
	gorm.Model
	SessionID        uint   `json:"-" gorm:"index"`
	Playthrough      int    `json:"playthrough"`
	ScenarioID       string `json:"scenario_id"`
	TokenID          string `json:"token_id"`
	EventDescription string `json:"event_description,omitempty"`
	FreedomBefore    int    `json:"freedom_before"`
	OrderBefore      int    `json:"order_before"`
	FreedomAfter     int    `json:"freedom_after"`
	OrderAfter       int    `json:"order_after"`
}

func (Decision) TableName() string { return "session_decisions" }

// Result records a finished playthrough. Rows survive restarts so stats can
// count every completed run.
type Result struct {
	gorm.Model
	SessionID   uint    `json:"-" gorm:"index"`
	Playthrough int     `json:"playthrough"`
	PackName    string  `json:"pack_name"`
	Verdict     Verdict `json:"verdict" gorm:"index"`
	Freedom     int     `json:"freedom"`
	Order       int     `json:"order"`
}

func (Result) TableName() string { return "playthrough_results" }

// TokenCount is how often a token was committed across all sessions.
type TokenCount struct {
	TokenID string `json:"token_id"`
	Count   int64  `json:"count"`
}

// Stats aggregates activity across sessions.
type Stats struct {
	SessionsStarted       int64             `json:"sessions_started"`
	PlaythroughsCompleted int64             `json:"playthroughs_completed"`
	Verdicts              map[Verdict]int64 `json:"verdicts"`
	TopTokens             []TokenCount      `json:"top_tokens"`
}
