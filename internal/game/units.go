package game

import "github.com/gridtactics/tactics/internal/board"

// PlayerID identifies one of the two players in a match.
// Using a dedicated type instead of plain string makes code safer and self-documenting.
type PlayerID string

const (
	Player1 PlayerID = "P1"
	Player2 PlayerID = "P2"
)

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Valid reports whether the id names one of the two match players.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// UnitCategory separates the single hero from its minions.
type UnitCategory string

const (
	CategoryHero   UnitCategory = "HERO"
	CategoryMinion UnitCategory = "MINION"
)

// MinionType is the subtype of a minion unit. It is empty for heroes.
type MinionType string

const (
	MinionTank     MinionType = "TANK"
	MinionArcher   MinionType = "ARCHER"
	MinionAssassin MinionType = "ASSASSIN"
)

// Unit is a single combatant. Units are value types; state transitions
// copy the unit rather than mutating it in place. Heroes are the only
// units with a selected skill and a cooldown counter; the NewHero and
// NewMinion constructors keep the category/subtype combinations legal.
type Unit struct {
	ID          string         `json:"id"`
	Owner       PlayerID       `json:"owner"`
	Category    UnitCategory   `json:"category"`
	Minion      MinionType     `json:"minion_type,omitempty"`
	HP          int            `json:"hp"`
	MaxHP       int            `json:"max_hp"`
	Attack      int            `json:"attack"`
	MoveRange   int            `json:"move_range"`
	AttackRange int            `json:"attack_range"`
	Alive       bool           `json:"alive"`
	Pos         board.Position `json:"position"`

	// Hero only.
	SkillID       string `json:"skill_id,omitempty"`
	SkillCooldown int    `json:"skill_cooldown,omitempty"`
}

// SkillCooldownRounds is the cooldown a hero skill enters after use.
const SkillCooldownRounds = 2

// Stat baselines are fixed per category/subtype and immutable after creation.
const (
	HeroHP          = 5
	HeroAttack      = 1
	HeroMoveRange   = 1
	HeroAttackRange = 1

	TankHP          = 5
	TankAttack      = 1
	TankMoveRange   = 1
	TankAttackRange = 1

	ArcherHP          = 3
	ArcherAttack      = 1
	ArcherMoveRange   = 1
	ArcherAttackRange = 3

	AssassinHP          = 2
	AssassinAttack      = 2
	AssassinMoveRange   = 4
	AssassinAttackRange = 1
)

// NewHero creates an alive hero for owner at pos with the given selected skill.
func NewHero(id string, owner PlayerID, pos board.Position, skillID string) Unit {
	return heroFromLine(id, owner, pos, skillID, DefaultStatTable().Hero)
}

// NewMinion creates an alive minion of the given subtype for owner at pos.
func NewMinion(id string, owner PlayerID, subtype MinionType, pos board.Position) Unit {
	return minionFromLine(id, owner, subtype, pos, DefaultStatTable().MinionLine(subtype))
}

// IsHero reports whether the unit is its owner's hero.
func (u Unit) IsHero() bool { return u.Category == CategoryHero }

// IsTank reports whether the unit is a TANK minion.
func (u Unit) IsTank() bool { return u.Category == CategoryMinion && u.Minion == MinionTank }

// Damaged returns a copy of the unit with damage applied. HP floors at
// zero and the alive flag tracks hp > 0.
func (u Unit) Damaged(amount int) Unit {
	u.HP -= amount
	if u.HP <= 0 {
		u.HP = 0
		u.Alive = false
	}
	return u
}

// Healed returns a copy with HP increased, capped at the unit's maximum.
// Healing never revives a dead unit.
func (u Unit) Healed(amount int) Unit {
	if !u.Alive {
		return u
	}
	u.HP += amount
	if u.HP > u.MaxHP {
		u.HP = u.MaxHP
	}
	return u
}
