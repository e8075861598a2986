package engine

import (
	"math/rand"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
)

// Roller supplies uniform draws in [0,1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// RollerFunc adapts a plain function to Roller.
type RollerFunc func() float64

func (f RollerFunc) Float64() float64 { return f() }

// DefaultRoller draws from the shared math/rand source, which is safe for
// concurrent use.
var DefaultRoller Roller = RollerFunc(rand.Float64)

// Clamp saturates a meter value to [MeterMin, MeterMax].
func Clamp(v int) int {
	if v < game.MeterMin {
		return game.MeterMin
	}
	if v > game.MeterMax {
		return game.MeterMax
	}
	return v
}

// SelectEvent walks events in order, drawing once per event, and returns
// the first one whose draw falls below its probability. At most one event
// fires per decision; later events are not rolled once one matches.
func SelectEvent(events []game.RandomEvent, r Roller) *game.RandomEvent {
	for i := range events {
		if r.Float64() < events[i].Probability {
			ev := events[i]
			return &ev
		}
	}
	return nil
}

// Commit applies tok, plus the triggered event if any, to st and moves the
// game into the debrief phase. Meters are clamped once, after both effects
// are summed.
func Commit(st game.State, sc game.Scenario, tok game.Token, r Roller) game.State {
	fd, od := tok.Effect.Freedom, tok.Effect.Order
	ev := SelectEvent(sc.Events, r)
	if ev != nil {
		fd += ev.Effect.Freedom
		od += ev.Effect.Order
	}

	next := st
	next.Freedom = Clamp(st.Freedom + fd)
	next.Order = Clamp(st.Order + od)
	next.Phase = game.PhaseDebrief
	next.Debrief = &game.Debrief{
		ScenarioID: sc.ID,
		Token:      tok,
		Event:      ev,
		Freedom:    next.Freedom,
		Order:      next.Order,
	}
	return next
}

// Advance leaves the debrief. It moves to the next scenario when one
// remains, otherwise the game ends. The end phase is terminal.
func Advance(st game.State, total int) game.State {
	next := st
	next.Debrief = nil
	if st.Phase == game.PhaseEnd {
		return next
	}
	if st.ScenarioIndex+1 < total {
		next.ScenarioIndex = st.ScenarioIndex + 1
		next.Phase = game.PhasePlaying
		return next
	}
	next.Phase = game.PhaseEnd
	return next
}

// Restart returns the initial state: midpoint meters, first scenario.
func Restart() game.State {
	return game.State{
		Freedom:       game.MeterDefault,
		Order:         game.MeterDefault,
		ScenarioIndex: 0,
		Phase:         game.PhasePlaying,
	}
}
