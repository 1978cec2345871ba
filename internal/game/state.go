package game

import (
	"fmt"

	"github.com/gridtactics/tactics/internal/board"
)

// Obstacle is an impassable cell spawned by a death choice. Obstacles
// only accumulate over a match; nothing removes them.
type Obstacle struct {
	ID  string         `json:"id"`
	Pos board.Position `json:"position"`
}

// BuffTile is a one-use tile spawned by a death choice. It expires
// after Duration round ends or as soon as a unit steps on it.
type BuffTile struct {
	ID       string         `json:"id"`
	Pos      board.Position `json:"position"`
	Duration int            `json:"duration"`
}

// BuffTileDuration is how many round ends an untriggered tile survives.
const BuffTileDuration = 2

// DeathChoice is a pending decision owed by the owner of a dead minion.
type DeathChoice struct {
	UnitID string         `json:"unit_id"`
	Owner  PlayerID       `json:"owner"`
	Pos    board.Position `json:"position"`
}

// UnitBuffs is the buff attachment map keyed by unit id.
type UnitBuffs map[string][]Buff

// GameState is the full match snapshot. Every state transition produces
// a new value via Clone; a GameState that has been handed out is never
// mutated again. The unit slice is creation-ordered and that order is
// the deterministic tie-break for every multi-candidate rule (guardian
// selection, simultaneous attrition deaths): unit ids are assigned in
// creation order, so walking the slice is increasing-unit-id order.
type GameState struct {
	Board         board.Board   `json:"board"`
	Units         []Unit        `json:"units"`
	Obstacles     []Obstacle    `json:"obstacles"`
	BuffTiles     []BuffTile    `json:"buff_tiles"`
	Buffs         UnitBuffs     `json:"unit_buffs"`
	CurrentPlayer PlayerID      `json:"current_player"`
	Round         int           `json:"round"`
	GameOver      bool          `json:"game_over"`
	Winner        PlayerID      `json:"winner,omitempty"`
	PendingDeaths []DeathChoice `json:"pending_death_choices,omitempty"`

	// Turn-ended flags for the running round. Both set means the round
	// is complete and attrition runs before the counter increments.
	P1TurnEnded bool `json:"p1_turn_ended"`
	P2TurnEnded bool `json:"p2_turn_ended"`

	// SpawnSeq numbers obstacles and buff tiles deterministically.
	SpawnSeq int `json:"spawn_seq"`
}

// Clone returns a deep copy sharing nothing mutable with the receiver.
func (s GameState) Clone() GameState {
	out := s
	out.Units = append([]Unit(nil), s.Units...)
	out.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	out.BuffTiles = append([]BuffTile(nil), s.BuffTiles...)
	out.PendingDeaths = append([]DeathChoice(nil), s.PendingDeaths...)
	if s.Buffs != nil {
		out.Buffs = make(UnitBuffs, len(s.Buffs))
		for id, buffs := range s.Buffs {
			out.Buffs[id] = append([]Buff(nil), buffs...)
		}
	}
	return out
}

// UnitByID returns a pointer into the state's unit slice, or nil.
// Callers within the rules package use it on cloned states only.
func (s *GameState) UnitByID(id string) *Unit {
	for i := range s.Units {
		if s.Units[i].ID == id {
			return &s.Units[i]
		}
	}
	return nil
}

// AliveUnitAt returns the alive unit occupying pos, or nil.
func (s *GameState) AliveUnitAt(pos board.Position) *Unit {
	for i := range s.Units {
		if s.Units[i].Alive && s.Units[i].Pos == pos {
			return &s.Units[i]
		}
	}
	return nil
}

// HasObstacleAt reports whether pos holds an obstacle.
func (s *GameState) HasObstacleAt(pos board.Position) bool {
	for i := range s.Obstacles {
		if s.Obstacles[i].Pos == pos {
			return true
		}
	}
	return false
}

// BuffTileAt returns the buff tile at pos, or nil.
func (s *GameState) BuffTileAt(pos board.Position) *BuffTile {
	for i := range s.BuffTiles {
		if s.BuffTiles[i].Pos == pos {
			return &s.BuffTiles[i]
		}
	}
	return nil
}

// Blocked reports whether pos is impassable: occupied by an alive unit
// or holding an obstacle.
func (s *GameState) Blocked(pos board.Position) bool {
	return s.AliveUnitAt(pos) != nil || s.HasObstacleAt(pos)
}

// HasAliveUnits reports whether owner still has any alive unit.
func (s *GameState) HasAliveUnits(owner PlayerID) bool {
	for i := range s.Units {
		if s.Units[i].Alive && s.Units[i].Owner == owner {
			return true
		}
	}
	return false
}

// HeroOf returns owner's hero, or nil if the lineup has none.
func (s *GameState) HeroOf(owner PlayerID) *Unit {
	for i := range s.Units {
		if s.Units[i].Owner == owner && s.Units[i].IsHero() {
			return &s.Units[i]
		}
	}
	return nil
}

// BuffsFor returns the buffs attached to a unit (possibly empty).
func (s *GameState) BuffsFor(unitID string) []Buff {
	if s.Buffs == nil {
		return nil
	}
	return s.Buffs[unitID]
}

// EffectiveMoveRange is the unit's move range with buff modifiers,
// floored at zero.
func (s *GameState) EffectiveMoveRange(u *Unit) int {
	r := u.MoveRange
	for _, b := range s.BuffsFor(u.ID) {
		r += b.MoveBonus()
	}
	if r < 0 {
		r = 0
	}
	return r
}

// EffectiveAttack is the unit's attack power with buff modifiers,
// floored at zero.
func (s *GameState) EffectiveAttack(u *Unit) int {
	a := u.Attack
	for _, b := range s.BuffsFor(u.ID) {
		a += b.AttackBonus()
	}
	if a < 0 {
		a = 0
	}
	return a
}

// HasPendingDeathChoice reports whether any death choice is unresolved.
func (s *GameState) HasPendingDeathChoice() bool {
	return len(s.PendingDeaths) > 0
}

// NextSpawnID returns a deterministic identifier for a spawned map
// object and the state with the sequence advanced.
func (s GameState) NextSpawnID(kind string) (string, GameState) {
	s.SpawnSeq++
	return fmt.Sprintf("%s_%d", kind, s.SpawnSeq), s
}
