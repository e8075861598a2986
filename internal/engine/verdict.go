package engine

import "github.com/harshgajera101/SmartSanstha-sub001/internal/game"

const (
	fragileBelow = 30
	tiltMargin   = 15
)

// VerdictInfo is the human-readable side of a verdict.
type VerdictInfo struct {
	Verdict     game.Verdict `json:"verdict"`
	Title       string       `json:"title"`
	Explanation string       `json:"explanation"`
}

var verdictInfos = map[game.Verdict]VerdictInfo{
	game.VerdictBalanced: {
		Verdict:     game.VerdictBalanced,
		Title:       "Balanced Republic",
		Explanation: "Rights were exercised and duties honoured in roughly equal measure. The Constitution works best when neither side crowds out the other.",
	},
	game.VerdictFreedomTilt: {
		Verdict:     game.VerdictFreedomTilt,
		Title:       "Freedom Without Limits",
		Explanation: "Citizens enjoyed wide liberty, but public order paid the price. Fundamental Rights come with reasonable restrictions for a reason.",
	},
	game.VerdictOrderTilt: {
		Verdict:     game.VerdictOrderTilt,
		Title:       "Order Above All",
		Explanation: "Society stayed calm, but many voices were silenced. Fundamental Duties are meant to strengthen rights, not replace them.",
	},
	game.VerdictFragile: {
		Verdict:     game.VerdictFragile,
		Title:       "Fragile Society",
		Explanation: "Both liberty and order wore thin. Crises compounded and trust eroded on every side.",
	},
}

// Judge reads the final meters. Fragility is checked first, then the gap
// between the meters.
func Judge(freedom, order int) game.Verdict {
	if freedom < fragileBelow && order < fragileBelow {
		return game.VerdictFragile
	}
	gap := freedom - order
	switch {
	case gap > tiltMargin:
		return game.VerdictFreedomTilt
	case gap < -tiltMargin:
		return game.VerdictOrderTilt
	default:
		return game.VerdictBalanced
	}
}

// Describe returns the title and explanation for v. Unknown verdicts yield
// false.
func Describe(v game.Verdict) (VerdictInfo, bool) {
	info, ok := verdictInfos[v]
	return info, ok
}
