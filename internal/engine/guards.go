package engine

import (
	"errors"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
)

var (
	ErrNotPlaying      = errors.New("no decision is pending")
	ErrNoDebrief       = errors.New("nothing to advance from")
	ErrUnknownToken    = errors.New("token is not offered by the current scenario")
	ErrUnknownScenario = errors.New("scenario index is outside the pack")
)

// CommitByID resolves tokenID against the current scenario and commits it.
// The state is returned unchanged with an error when the game is not
// waiting for a decision or the token is not on offer.
func CommitByID(st game.State, scenarios []game.Scenario, tokenID string, r Roller) (game.State, error) {
	if st.Phase != game.PhasePlaying {
		return st, ErrNotPlaying
	}
	if st.ScenarioIndex < 0 || st.ScenarioIndex >= len(scenarios) {
		return st, ErrUnknownScenario
	}
	sc := scenarios[st.ScenarioIndex]
	tok, ok := sc.Token(tokenID)
	if !ok {
		return st, ErrUnknownToken
	}
	return Commit(st, sc, tok, r), nil
}

// AdvanceFrom is Advance restricted to the debrief phase.
func AdvanceFrom(st game.State, total int) (game.State, error) {
	if st.Phase != game.PhaseDebrief {
		return st, ErrNoDebrief
	}
	return Advance(st, total), nil
}
