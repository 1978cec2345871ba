package rules

import (
	"fmt"

	"github.com/gridtactics/tactics/internal/game"
)

// applySkill invokes the injected skill hook for the acting hero and
// starts the cooldown. The hook sees the pre-use cooldown counter.
// Units the hook kills get ordinary death resolution afterwards, in
// unit order, detected by comparing alive flags around the call.
func (e *Engine) applySkill(st game.GameState, heroID string) game.GameState {
	hero := st.UnitByID(heroID)
	if hero == nil || !hero.IsHero() {
		panic(fmt.Sprintf("rules: skill use by non-hero unit %q", heroID))
	}
	skillID := hero.SkillID

	aliveBefore := make(map[string]bool, len(st.Units))
	for i := range st.Units {
		if st.Units[i].Alive {
			aliveBefore[st.Units[i].ID] = true
		}
	}

	if e.skill != nil {
		st = e.skill(st, heroID, skillID, e.rng)
	}
	if h := st.UnitByID(heroID); h != nil {
		h.SkillCooldown = game.SkillCooldownRounds
	}

	for i := range st.Units {
		u := st.Units[i]
		if aliveBefore[u.ID] && !u.Alive {
			st = e.resolveDeath(st, u)
			if st.GameOver {
				return st
			}
		}
	}
	return st
}
