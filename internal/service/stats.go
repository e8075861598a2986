package service

import (
	"github.com/harshgajera101/SmartSanstha-sub001/internal/dedupe"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
)

// TopTokens is how many tokens the stats endpoint ranks.
const TopTokens = 5

// Stats returns aggregate activity. Concurrent callers share one query but
// each gets its own copy.
func Stats(repo interface {
	GetStats(topTokens int) (*game.Stats, error)
}) (*game.Stats, error) {
	v, err, _ := dedupe.StatsGroup.Do("stats", func() (interface{}, error) {
		return repo.GetStats(TopTokens)
	})
	if err != nil {
		return nil, err
	}
	return copyStats(v.(*game.Stats)), nil
}

func copyStats(src *game.Stats) *game.Stats {
	cp := *src
	cp.Verdicts = make(map[game.Verdict]int64, len(src.Verdicts))
	for k, n := range src.Verdicts {
		cp.Verdicts[k] = n
	}
	cp.TopTokens = append([]game.TokenCount(nil), src.TopTokens...)
	return &cp
}
