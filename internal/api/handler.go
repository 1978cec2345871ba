package api

import (
	"time"

	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/rules"
	"github.com/gridtactics/tactics/internal/storage"
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo          storage.Repository
	actionTimeout time.Duration
	policy        rules.DeathChoicePolicy
	stats         game.StatTable
	seed          int64
}

// NewMatchHandler creates a MatchHandler with the given repository and
// the configured action timeout, death-choice policy, stat baselines
// and optional fixed RNG seed (0 derives a seed per match).
func NewMatchHandler(repo storage.Repository, actionTimeout time.Duration, policy rules.DeathChoicePolicy, stats game.StatTable, seed int64) *MatchHandler {
	return &MatchHandler{
		repo:          repo,
		actionTimeout: actionTimeout,
		policy:        policy,
		stats:         stats,
		seed:          seed,
	}
}
