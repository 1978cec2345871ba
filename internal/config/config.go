package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/rules"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Per-turn action deadline in seconds. Matches with no accepted
	// action before the deadline are finished for inactivity.
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
	// What happens when a minion dies: "prompt" (the owner chooses),
	// "obstacle" or "buff_tile" (auto-resolve).
	DeathChoicePolicy string `json:"death_choice_policy"`
	// Optional fixed RNG seed. 0 means derive a seed per match.
	RNGSeed int64 `json:"rng_seed"`
	// Optional stat overrides per archetype. Archetypes left out keep
	// their default baselines.
	Stats *struct {
		Hero     *game.StatLine `json:"hero"`
		Tank     *game.StatLine `json:"tank"`
		Archer   *game.StatLine `json:"archer"`
		Assassin *game.StatLine `json:"assassin"`
	} `json:"stats"`
}

// LoadedConfig is the validated server configuration.
type LoadedConfig struct {
	ServerAddress     string
	ActionTimeout     time.Duration
	DeathChoicePolicy rules.DeathChoicePolicy
	RNGSeed           int64
	Stats             game.StatTable
}

const (
	defaultAddress       = ":8080"
	defaultActionTimeout = 90 * time.Second
	defaultDeathChoice   = rules.PolicyPrompt
	minimumActionTimeout = 5
)

// LoadConfig reads the configuration file at path and validates it.
// Every key is optional; an empty file yields the defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := &LoadedConfig{
		ServerAddress:     defaultAddress,
		ActionTimeout:     defaultActionTimeout,
		DeathChoicePolicy: defaultDeathChoice,
		Stats:             game.DefaultStatTable(),
	}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.ActionTimeoutSeconds != 0 {
		if rc.ActionTimeoutSeconds < minimumActionTimeout {
			return nil, fmt.Errorf("config file %s: action_timeout_seconds must be at least %d", path, minimumActionTimeout)
		}
		out.ActionTimeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}
	if rc.DeathChoicePolicy != "" {
		p := rules.DeathChoicePolicy(rc.DeathChoicePolicy)
		if !p.Valid() {
			return nil, fmt.Errorf("config file %s: unknown death_choice_policy %q", path, rc.DeathChoicePolicy)
		}
		out.DeathChoicePolicy = p
	}
	out.RNGSeed = rc.RNGSeed
	if rc.Stats != nil {
		applyLine(&out.Stats.Hero, rc.Stats.Hero)
		applyLine(&out.Stats.Tank, rc.Stats.Tank)
		applyLine(&out.Stats.Archer, rc.Stats.Archer)
		applyLine(&out.Stats.Assassin, rc.Stats.Assassin)
		if err := validateStats(out.Stats, path); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func applyLine(dst, src *game.StatLine) {
	if src != nil {
		*dst = *src
	}
}

func validateStats(t game.StatTable, path string) error {
	check := func(name string, l game.StatLine) error {
		if l.HP <= 0 {
			return fmt.Errorf("config file %s: stats.%s hp must be positive", path, name)
		}
		if l.Attack < 0 || l.MoveRange < 0 || l.AttackRange < 1 {
			return fmt.Errorf("config file %s: stats.%s has out-of-range values", path, name)
		}
		return nil
	}
	if err := check("hero", t.Hero); err != nil {
		return err
	}
	if err := check("tank", t.Tank); err != nil {
		return err
	}
	if err := check("archer", t.Archer); err != nil {
		return err
	}
	return check("assassin", t.Assassin)
}
