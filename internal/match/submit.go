package match

import (
	"fmt"
	"time"

	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/rules"
	"github.com/gridtactics/tactics/internal/skills"
)

// Submit runs one action through the rules engine against the match's
// stored state. Rejections are returned in the Result and leave the
// row untouched; accepted actions persist the successor state and
// reset the action deadline. The per-action RNG stream is derived from
// the match seed and the count of previously accepted actions, so a
// replay of the same submissions reproduces the match exactly.
func Submit(repo MatchRepo, joinCode string, action game.Action, policy rules.DeathChoicePolicy, actionTimeout time.Duration) (*Match, game.GameState, rules.Result, error) {
	m, err := repo.FindMatchByJoinCode(joinCode)
	if err != nil || m == nil {
		return nil, game.GameState{}, rules.Result{}, ErrMatchNotFound
	}
	if m.Status != StatusInProgress {
		return nil, game.GameState{}, rules.Result{}, ErrMatchNotInProgress
	}
	st, err := m.State()
	if err != nil {
		return nil, game.GameState{}, rules.Result{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	engine := rules.New(skills.Apply, policy, game.NewSeededRNG(m.Seed+int64(m.ActionCount)))
	next, res := engine.Submit(st, action)
	if !res.Accepted {
		return m, st, res, nil
	}

	m.ActionCount++
	if err := m.setState(next); err != nil {
		return nil, game.GameState{}, rules.Result{}, fmt.Errorf("encode successor state: %w", err)
	}
	if next.GameOver {
		m.Status = StatusFinished
		m.Winner = string(next.Winner)
		m.Message = "Match finished. Winner: " + winnerName(m, next.Winner)
		m.ActionDeadline = time.Time{}
	} else {
		m.ActionDeadline = time.Now().Add(actionTimeout)
	}

	if err := repo.UpdateMatch(m); err != nil {
		return nil, game.GameState{}, rules.Result{}, err
	}
	return m, next, res, nil
}

func winnerName(m *Match, w game.PlayerID) string {
	switch w {
	case game.Player1:
		return m.Player1Name
	case game.Player2:
		return m.Player2Name
	}
	return ""
}
