package engine

import "github.com/harshgajera101/SmartSanstha-sub001/internal/game"

// Chooser picks a token for a scenario during an unattended playthrough.
type Chooser func(sc game.Scenario) game.Token

// Autoplay runs one full playthrough of pack from the initial state and
// returns the terminal state. An empty pack ends immediately.
func Autoplay(pack *game.Pack, choose Chooser, r Roller) game.State {
	st := Restart()
	if pack.Len() == 0 {
		st.Phase = game.PhaseEnd
		return st
	}
	for st.Phase != game.PhaseEnd {
		sc := pack.Scenarios[st.ScenarioIndex]
		st = Commit(st, sc, choose(sc), r)
		st = Advance(st, pack.Len())
	}
	return st
}
