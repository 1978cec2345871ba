package rules

import (
	"fmt"

	"github.com/gridtactics/tactics/internal/game"
)

// SkillHook is the externally supplied pure skill effect. The engine
// never interprets skill semantics itself; it passes the state, the
// acting hero and the opaque skill id to the hook and takes whatever
// state comes back. The hook must not mutate its input.
type SkillHook func(state game.GameState, heroUnitID, skillID string, rng game.RNG) game.GameState

// DeathChoicePolicy controls what happens when a minion dies.
type DeathChoicePolicy string

const (
	// PolicyPrompt records a pending choice and waits for the owner's
	// DEATH_CHOICE action. All other play is frozen meanwhile.
	PolicyPrompt DeathChoicePolicy = "prompt"
	// PolicyObstacle and PolicyBuffTile auto-resolve every death
	// without prompting.
	PolicyObstacle DeathChoicePolicy = "obstacle"
	PolicyBuffTile DeathChoicePolicy = "buff_tile"
)

// Valid reports whether p names a known policy.
func (p DeathChoicePolicy) Valid() bool {
	return p == PolicyPrompt || p == PolicyObstacle || p == PolicyBuffTile
}

// Engine composes the validator and the resolver: one Submit call
// takes a state and an action and returns either the successor state
// or the unchanged state plus a rejection reason. The engine itself is
// stateless apart from its collaborators and is safe to share across
// matches only if the RNG stream is per match.
type Engine struct {
	skill  SkillHook
	policy DeathChoicePolicy
	rng    game.RNG
}

// New builds an engine around a skill hook, a death-choice policy and
// a deterministic RNG stream.
func New(skill SkillHook, policy DeathChoicePolicy, rng game.RNG) *Engine {
	if !policy.Valid() {
		panic(fmt.Sprintf("rules: unknown death choice policy %q", policy))
	}
	if rng == nil {
		panic("rules: nil RNG")
	}
	return &Engine{skill: skill, policy: policy, rng: rng}
}

// Submit validates action against state and, if legal, applies it.
// The input state is never mutated; on rejection it is returned as is.
func (e *Engine) Submit(state game.GameState, action game.Action) (game.GameState, Result) {
	if res := Validate(state, action); !res.Accepted {
		return state, res
	}
	return e.Apply(state, action), Accepted()
}

// Apply produces the successor state for a validated action. It must
// only be called after Validate accepted the action; it does not
// re-validate, and it panics rather than corrupt state when fed an
// action that validation would have rejected.
func (e *Engine) Apply(state game.GameState, action game.Action) game.GameState {
	st := state.Clone()
	switch action.Type {
	case game.ActionMove:
		return e.applyMove(st, action.ActingUnitID, *action.TargetPos)
	case game.ActionAttack:
		return e.applyAttack(st, action.ActingUnitID, action.TargetUnitID)
	case game.ActionMoveAndAttack:
		st = e.applyMove(st, action.ActingUnitID, *action.TargetPos)
		return e.applyAttack(st, action.ActingUnitID, action.TargetUnitID)
	case game.ActionUseSkill:
		return e.applySkill(st, action.ActingUnitID)
	case game.ActionEndTurn:
		return e.applyEndTurn(st, action.Player)
	case game.ActionDeathChoice:
		return e.applyDeathChoice(st, action.Choice)
	}
	panic(fmt.Sprintf("rules: apply called with unknown action type %q", action.Type))
}

// resolveDeath runs the death consequences for a unit whose HP just
// reached zero. Hero death ends the match at once; minion death spawns
// a terrain artifact per policy or queues the owner's choice.
func (e *Engine) resolveDeath(st game.GameState, dead game.Unit) game.GameState {
	delete(st.Buffs, dead.ID)
	if dead.IsHero() {
		st.GameOver = true
		st.Winner = dead.Owner.Opponent()
		return st
	}
	switch e.policy {
	case PolicyObstacle:
		return spawnObstacle(st, dead.Pos)
	case PolicyBuffTile:
		return spawnBuffTile(st, dead.Pos)
	default:
		st.PendingDeaths = append(st.PendingDeaths, game.DeathChoice{
			UnitID: dead.ID,
			Owner:  dead.Owner,
			Pos:    dead.Pos,
		})
		return st
	}
}
