package game

import (
	"fmt"

	"github.com/gridtactics/tactics/internal/board"
)

// StatLine is one unit archetype's baseline numbers.
type StatLine struct {
	HP          int `json:"hp"`
	Attack      int `json:"attack"`
	MoveRange   int `json:"move_range"`
	AttackRange int `json:"attack_range"`
}

// StatTable holds the baselines for every archetype in a match. Stats
// are fixed at creation; nothing rewrites a unit's baseline afterward.
type StatTable struct {
	Hero     StatLine `json:"hero"`
	Tank     StatLine `json:"tank"`
	Archer   StatLine `json:"archer"`
	Assassin StatLine `json:"assassin"`
}

// DefaultStatTable returns the standard archetype baselines.
func DefaultStatTable() StatTable {
	return StatTable{
		Hero:     StatLine{HP: HeroHP, Attack: HeroAttack, MoveRange: HeroMoveRange, AttackRange: HeroAttackRange},
		Tank:     StatLine{HP: TankHP, Attack: TankAttack, MoveRange: TankMoveRange, AttackRange: TankAttackRange},
		Archer:   StatLine{HP: ArcherHP, Attack: ArcherAttack, MoveRange: ArcherMoveRange, AttackRange: ArcherAttackRange},
		Assassin: StatLine{HP: AssassinHP, Attack: AssassinAttack, MoveRange: AssassinMoveRange, AttackRange: AssassinAttackRange},
	}
}

// MinionLine returns the baseline for a minion subtype.
func (t StatTable) MinionLine(subtype MinionType) StatLine {
	switch subtype {
	case MinionTank:
		return t.Tank
	case MinionArcher:
		return t.Archer
	case MinionAssassin:
		return t.Assassin
	}
	return StatLine{}
}

// NewStandardMatch builds the opening state for a standard match with
// default baselines: each player fields a hero flanked by a tank, an
// archer and an assassin on their back rank, player 1 to act, round 1.
func NewStandardMatch(p1SkillID, p2SkillID string) GameState {
	return NewCustomMatch(DefaultStatTable(), p1SkillID, p2SkillID)
}

// NewCustomMatch is NewStandardMatch with configured baselines. Unit
// ids are assigned in creation order, player 1's lineup first, so the
// state's tie-break order is fixed at this point for the whole match.
func NewCustomMatch(stats StatTable, p1SkillID, p2SkillID string) GameState {
	b := board.Default()
	seq := 0
	nextID := func() string {
		seq++
		return fmt.Sprintf("u%d", seq)
	}

	lineup := func(owner PlayerID, skillID string, rank int, mirror bool) []Unit {
		col := func(x int) int {
			if mirror {
				return b.Width - 1 - x
			}
			return x
		}
		at := func(x int) board.Position { return board.Position{X: col(x), Y: rank} }
		return []Unit{
			heroFromLine(nextID(), owner, at(2), skillID, stats.Hero),
			minionFromLine(nextID(), owner, MinionTank, at(1), stats.Tank),
			minionFromLine(nextID(), owner, MinionArcher, at(3), stats.Archer),
			minionFromLine(nextID(), owner, MinionAssassin, at(0), stats.Assassin),
		}
	}

	units := lineup(Player1, p1SkillID, 0, false)
	units = append(units, lineup(Player2, p2SkillID, b.Height-1, true)...)

	return GameState{
		Board:         b,
		Units:         units,
		Buffs:         UnitBuffs{},
		CurrentPlayer: Player1,
		Round:         1,
	}
}

func heroFromLine(id string, owner PlayerID, pos board.Position, skillID string, line StatLine) Unit {
	return Unit{
		ID:          id,
		Owner:       owner,
		Category:    CategoryHero,
		HP:          line.HP,
		MaxHP:       line.HP,
		Attack:      line.Attack,
		MoveRange:   line.MoveRange,
		AttackRange: line.AttackRange,
		Alive:       true,
		Pos:         pos,
		SkillID:     skillID,
	}
}

func minionFromLine(id string, owner PlayerID, subtype MinionType, pos board.Position, line StatLine) Unit {
	return Unit{
		ID:          id,
		Owner:       owner,
		Category:    CategoryMinion,
		Minion:      subtype,
		HP:          line.HP,
		MaxHP:       line.HP,
		Attack:      line.Attack,
		MoveRange:   line.MoveRange,
		AttackRange: line.AttackRange,
		Alive:       true,
		Pos:         pos,
	}
}
