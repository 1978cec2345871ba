package match

import (
	"fmt"
	"time"

	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/skills"
)

// Join adds the second player to a waiting match and starts the
// simulation: the opening state is built from the configured stat
// baselines, encoded and stored, and the action deadline starts
// ticking. Player 1 acts first.
func Join(repo MatchRepo, joinCode, playerName, skillID string, stats game.StatTable, actionTimeout time.Duration) (*Match, error) {
	m, err := repo.FindMatchByJoinCode(joinCode)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != StatusWaitingForOpponent {
		return nil, ErrMatchNotJoinable
	}
	if !skills.Known(skillID) {
		return nil, ErrUnknownSkill
	}

	m.Player2Name = playerName
	m.Player2Skill = skillID

	st := game.NewCustomMatch(stats, m.Player1Skill, m.Player2Skill)
	if err := m.setState(st); err != nil {
		return nil, fmt.Errorf("encode opening state: %w", err)
	}
	m.Status = StatusInProgress
	m.Message = "The match has started. Player 1 to act."
	m.ActionDeadline = time.Now().Add(actionTimeout)

	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}
