package game

import "github.com/gridtactics/tactics/internal/board"

// ActionType is a string alias representing a player's submitted action.
type ActionType string

const (
	ActionMove          ActionType = "MOVE"
	ActionAttack        ActionType = "ATTACK"
	ActionMoveAndAttack ActionType = "MOVE_AND_ATTACK"
	ActionEndTurn       ActionType = "END_TURN"
	ActionUseSkill      ActionType = "USE_SKILL"
	ActionDeathChoice   ActionType = "DEATH_CHOICE"
)

// DeathChoiceType is the owner's decision after a minion death.
type DeathChoiceType string

const (
	SpawnObstacle DeathChoiceType = "SPAWN_OBSTACLE"
	SpawnBuffTile DeathChoiceType = "SPAWN_BUFF_TILE"
)

// Action is an inert description of player intent. It carries no
// behavior; legality is entirely the validator's concern and effects
// are entirely the resolver's.
type Action struct {
	Type         ActionType      `json:"type"`
	Player       PlayerID        `json:"player_id"`
	ActingUnitID string          `json:"acting_unit_id,omitempty"`
	TargetPos    *board.Position `json:"target_position,omitempty"`
	TargetUnitID string          `json:"target_unit_id,omitempty"`
	Choice       DeathChoiceType `json:"death_choice,omitempty"`
}
