package skills

import "github.com/gridtactics/tactics/internal/game"

// Default hero skill catalog. The rules engine treats skill ids as
// opaque; this package is the collaborator that gives them meaning.
// Every skill is a pure transform over the match state.
const (
	// Shockwave deals 1 damage to every enemy adjacent to the hero.
	Shockwave = "shockwave"
	// Mend heals every adjacent friendly unit by 2, capped at max HP.
	Mend = "mend"
	// Quickstep grants the hero a SPEED buff.
	Quickstep = "quickstep"
)

// IDs lists the catalog's skill identifiers.
var IDs = []string{Shockwave, Mend, Quickstep}

// Known reports whether the catalog implements the skill id.
func Known(skillID string) bool {
	for _, id := range IDs {
		if id == skillID {
			return true
		}
	}
	return false
}

const (
	shockwaveDamage = 1
	mendHealing     = 2
)

// Apply is the catalog's skill hook. Unknown skill ids and dead or
// missing heroes leave the state unchanged; the engine still charges
// the cooldown either way.
func Apply(st game.GameState, heroUnitID, skillID string, rng game.RNG) game.GameState {
	st = st.Clone()
	hero := st.UnitByID(heroUnitID)
	if hero == nil || !hero.Alive {
		return st
	}
	switch skillID {
	case Shockwave:
		return shockwave(st, hero)
	case Mend:
		return mend(st, hero)
	case Quickstep:
		return quickstep(st, hero)
	}
	return st
}

func shockwave(st game.GameState, hero *game.Unit) game.GameState {
	for i := range st.Units {
		u := &st.Units[i]
		if !u.Alive || u.Owner == hero.Owner {
			continue
		}
		if u.Pos.AdjacentTo(hero.Pos) {
			*u = u.Damaged(shockwaveDamage)
		}
	}
	return st
}

func mend(st game.GameState, hero *game.Unit) game.GameState {
	for i := range st.Units {
		u := &st.Units[i]
		if !u.Alive || u.Owner != hero.Owner || u.ID == hero.ID {
			continue
		}
		if u.Pos.AdjacentTo(hero.Pos) {
			*u = u.Healed(mendHealing)
		}
	}
	return st
}

func quickstep(st game.GameState, hero *game.Unit) game.GameState {
	if st.Buffs == nil {
		st.Buffs = game.UnitBuffs{}
	}
	buff := game.NewBuff(game.BuffSpeed)
	list := st.Buffs[hero.ID]
	for i := range list {
		if list[i].Type == buff.Type {
			list[i] = buff
			return st
		}
	}
	st.Buffs[hero.ID] = append(list, buff)
	return st
}
