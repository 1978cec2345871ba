package rules

import (
	"github.com/gridtactics/tactics/internal/board"
	"github.com/gridtactics/tactics/internal/game"
)

// Validate decides whether action is legal against state. It is a pure
// function: no side effects, no state mutation, and it never panics on
// hostile input. Checks run in a fixed order and the first failing one
// determines the reason.
func Validate(state game.GameState, action game.Action) Result {
	if state.GameOver {
		return Rejected(ReasonGameAlreadyOver)
	}
	if !action.Player.Valid() {
		return Rejected(ReasonMalformedAction)
	}

	// A pending death choice freezes normal play. Only the owed choice
	// itself goes through, and the owner may submit it out of turn.
	if state.HasPendingDeathChoice() {
		if action.Type != game.ActionDeathChoice {
			return Rejected(ReasonDeathChoicePending)
		}
		return validateDeathChoice(&state, action)
	}
	if action.Type == game.ActionDeathChoice {
		return Rejected(ReasonMalformedAction)
	}

	if action.Player != state.CurrentPlayer {
		return Rejected(ReasonNotCurrentPlayer)
	}

	switch action.Type {
	case game.ActionMove:
		return validateMove(&state, action)
	case game.ActionAttack:
		return validateAttack(&state, action)
	case game.ActionMoveAndAttack:
		return validateMoveAndAttack(&state, action)
	case game.ActionUseSkill:
		return validateUseSkill(&state, action)
	case game.ActionEndTurn:
		return Accepted()
	}
	return Rejected(ReasonMalformedAction)
}

// actingUnit resolves the action's acting unit and runs the shared
// exists/alive/ownership checks.
func actingUnit(s *game.GameState, action game.Action) (*game.Unit, Result) {
	if action.ActingUnitID == "" {
		return nil, Rejected(ReasonMalformedAction)
	}
	u := s.UnitByID(action.ActingUnitID)
	if u == nil || !u.Alive {
		return nil, Rejected(ReasonUnknownOrDeadUnit)
	}
	if u.Owner != action.Player {
		return nil, Rejected(ReasonInvalidTarget)
	}
	return u, Accepted()
}

func validateMove(s *game.GameState, action game.Action) Result {
	u, res := actingUnit(s, action)
	if !res.Accepted {
		return res
	}
	if action.TargetPos == nil {
		return Rejected(ReasonMalformedAction)
	}
	return moveLegality(s, u, *action.TargetPos)
}

// moveLegality checks a move of u to dest against bounds, range,
// destination occupancy and path clearance. The mover's own cell never
// blocks, so a zero-length move is legal.
func moveLegality(s *game.GameState, u *game.Unit, dest board.Position) Result {
	if !s.Board.InBounds(dest) {
		return Rejected(ReasonOutOfRange)
	}
	if u.Pos.ManhattanDistance(dest) > s.EffectiveMoveRange(u) {
		return Rejected(ReasonOutOfRange)
	}
	if s.HasObstacleAt(dest) {
		return Rejected(ReasonPathBlocked)
	}
	if occ := s.AliveUnitAt(dest); occ != nil && occ.ID != u.ID {
		if occ.Owner == u.Owner {
			return Rejected(ReasonInvalidTarget)
		}
		return Rejected(ReasonPathBlocked)
	}
	for _, path := range board.StepPaths(u.Pos, dest) {
		if pathClear(s, path) {
			return Accepted()
		}
	}
	return Rejected(ReasonPathBlocked)
}

// pathClear reports whether none of the intermediate cells is blocked.
func pathClear(s *game.GameState, path []board.Position) bool {
	for _, cell := range path {
		if s.Blocked(cell) {
			return false
		}
	}
	return true
}

func validateAttack(s *game.GameState, action game.Action) Result {
	u, res := actingUnit(s, action)
	if !res.Accepted {
		return res
	}
	return attackLegality(s, u, u.Pos, action.TargetUnitID)
}

// attackLegality checks an attack launched from origin, which differs
// from the attacker's current cell during MOVE_AND_ATTACK.
func attackLegality(s *game.GameState, attacker *game.Unit, origin board.Position, targetID string) Result {
	if targetID == "" {
		return Rejected(ReasonMalformedAction)
	}
	target := s.UnitByID(targetID)
	if target == nil || !target.Alive {
		return Rejected(ReasonUnknownOrDeadUnit)
	}
	if target.Owner == attacker.Owner {
		return Rejected(ReasonInvalidTarget)
	}
	if origin.ManhattanDistance(target.Pos) > attacker.AttackRange {
		return Rejected(ReasonOutOfRange)
	}
	// Ranged attacks fire along rows and columns only. At range 1 every
	// adjacent cell is orthogonal anyway.
	if attacker.AttackRange > 1 && !origin.OrthogonallyAligned(target.Pos) {
		return Rejected(ReasonOutOfRange)
	}
	return Accepted()
}

func validateMoveAndAttack(s *game.GameState, action game.Action) Result {
	u, res := actingUnit(s, action)
	if !res.Accepted {
		return res
	}
	if action.TargetPos == nil {
		return Rejected(ReasonMalformedAction)
	}
	if res := moveLegality(s, u, *action.TargetPos); !res.Accepted {
		return res
	}
	return attackLegality(s, u, *action.TargetPos, action.TargetUnitID)
}

func validateUseSkill(s *game.GameState, action game.Action) Result {
	u, res := actingUnit(s, action)
	if !res.Accepted {
		return res
	}
	if !u.IsHero() || u.SkillID == "" {
		return Rejected(ReasonSkillNotReady)
	}
	if u.SkillCooldown > 0 {
		return Rejected(ReasonSkillNotReady)
	}
	return Accepted()
}

// validateDeathChoice admits only the owed owner's well-formed choice.
func validateDeathChoice(s *game.GameState, action game.Action) Result {
	pending := s.PendingDeaths[0]
	if action.Player != pending.Owner {
		return Rejected(ReasonNotCurrentPlayer)
	}
	if action.Choice != game.SpawnObstacle && action.Choice != game.SpawnBuffTile {
		return Rejected(ReasonMalformedAction)
	}
	return Accepted()
}
