package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/keys"
)

type effectEntry struct {
	Freedom int `json:"freedom" yaml:"freedom"`
	Order   int `json:"order" yaml:"order"`
}

type tokenEntry struct {
	ID          string      `json:"id" yaml:"id"`
	Label       string      `json:"label" yaml:"label"`
	Effect      effectEntry `json:"effect" yaml:"effect"`
	Explanation string      `json:"explanation" yaml:"explanation"`
}

type eventEntry struct {
	Probability float64     `json:"probability" yaml:"probability"`
	Effect      effectEntry `json:"effect" yaml:"effect"`
	Description string      `json:"description" yaml:"description"`
}

type scenarioEntry struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Tokens      []tokenEntry `json:"tokens" yaml:"tokens"`
	Events      []eventEntry `json:"events" yaml:"events"`
}

type rawPack struct {
	Name      string          `json:"name" yaml:"name"`
	Scenarios []scenarioEntry `json:"scenarios" yaml:"scenarios"`
}

// LoadPack reads a scenario pack. Files ending in .json are decoded as
// JSON, everything else as YAML. Missing ids are derived from titles or
// labels.
func LoadPack(path string) (*game.Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario pack %s: %w", path, err)
	}
	var rp rawPack
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(b, &rp)
	} else {
		err = yaml.Unmarshal(b, &rp)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario pack %s: %w", path, err)
	}

	pack := &game.Pack{Name: strings.TrimSpace(rp.Name)}
	if pack.Name == "" {
		pack.Name = keys.FromTitle(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	for _, se := range rp.Scenarios {
		sc := game.Scenario{
			ID:          strings.TrimSpace(se.ID),
			Title:       strings.TrimSpace(se.Title),
			Description: strings.TrimSpace(se.Description),
		}
		if sc.ID == "" {
			sc.ID = keys.FromTitle(sc.Title)
		}
		for _, te := range se.Tokens {
			tok := game.Token{
				ID:          strings.TrimSpace(te.ID),
				Label:       strings.TrimSpace(te.Label),
				Effect:      game.Effect{Freedom: te.Effect.Freedom, Order: te.Effect.Order},
				Explanation: strings.TrimSpace(te.Explanation),
			}
			if tok.ID == "" {
				tok.ID = keys.FromTitle(tok.Label)
			}
			sc.Tokens = append(sc.Tokens, tok)
		}
		for _, ee := range se.Events {
			sc.Events = append(sc.Events, game.RandomEvent{
				Probability: ee.Probability,
				Effect:      game.Effect{Freedom: ee.Effect.Freedom, Order: ee.Effect.Order},
				Description: strings.TrimSpace(ee.Description),
			})
		}
		pack.Scenarios = append(pack.Scenarios, sc)
	}

	if err := ValidatePack(pack); err != nil {
		return nil, fmt.Errorf("scenario pack %s: %w", path, err)
	}
	return pack, nil
}

// ValidatePack checks the cross-entry rules every pack must satisfy:
// at least one scenario, unique scenario ids, exactly TokensPerScenario
// tokens with unique ids per scenario, and event probabilities in [0,1].
func ValidatePack(p *game.Pack) error {
	if p.Len() == 0 {
		return fmt.Errorf("pack %q has no scenarios", p.Name)
	}
	seen := make(map[string]struct{}, p.Len())
	for i, sc := range p.Scenarios {
		if sc.ID == "" {
			return fmt.Errorf("scenario #%d is missing both 'id' and 'title'", i+1)
		}
		if _, dup := seen[sc.ID]; dup {
			return fmt.Errorf("duplicate scenario id '%s'", sc.ID)
		}
		seen[sc.ID] = struct{}{}

		if len(sc.Tokens) != game.TokensPerScenario {
			return fmt.Errorf("scenario '%s' offers %d tokens, want %d", sc.ID, len(sc.Tokens), game.TokensPerScenario)
		}
		tokens := make(map[string]struct{}, len(sc.Tokens))
		for _, tok := range sc.Tokens {
			if tok.ID == "" {
				return fmt.Errorf("scenario '%s' has a token missing both 'id' and 'label'", sc.ID)
			}
			if _, dup := tokens[tok.ID]; dup {
				return fmt.Errorf("scenario '%s' has duplicate token id '%s'", sc.ID, tok.ID)
			}
			tokens[tok.ID] = struct{}{}
		}
		for j, ev := range sc.Events {
			if math.IsNaN(ev.Probability) || ev.Probability < 0 || ev.Probability > 1 {
				return fmt.Errorf("scenario '%s' event #%d has probability %v outside [0,1]", sc.ID, j+1, ev.Probability)
			}
		}
	}
	return nil
}
