package rules

import "github.com/gridtactics/tactics/internal/game"

// applyEndTurn hands the turn to the opponent. When both players have
// ended their turn the round closes: end-of-round processing runs and
// the next round opens with player 1 to act.
func (e *Engine) applyEndTurn(st game.GameState, p game.PlayerID) game.GameState {
	switch p {
	case game.Player1:
		st.P1TurnEnded = true
	case game.Player2:
		st.P2TurnEnded = true
	}
	st.CurrentPlayer = p.Opponent()
	if st.P1TurnEnded && st.P2TurnEnded {
		st = e.endRound(st)
	}
	return st
}

// endRound runs the end-of-round sequence: bleed damage, minion
// attrition, buff and tile expiry, cooldown recovery, then the round
// counter. Both damage passes walk the creation-ordered unit slice so
// simultaneous deaths resolve in increasing unit-id order. A hero
// death anywhere in the sequence ends the match and pre-empts the
// remaining steps.
func (e *Engine) endRound(st game.GameState) game.GameState {
	for i := range st.Units {
		u := &st.Units[i]
		if !u.Alive {
			continue
		}
		bleed := 0
		for _, b := range st.BuffsFor(u.ID) {
			bleed += b.BleedDamage()
		}
		if bleed == 0 {
			continue
		}
		*u = u.Damaged(bleed)
		if !u.Alive {
			st = e.resolveDeath(st, *u)
			if st.GameOver {
				return st
			}
		}
	}

	// Attrition. Heroes are exempt, so this pass cannot end the match.
	for i := range st.Units {
		u := &st.Units[i]
		if !u.Alive || u.IsHero() {
			continue
		}
		*u = u.Damaged(1)
		if !u.Alive {
			st = e.resolveDeath(st, *u)
		}
	}

	st.Buffs = decayBuffs(st.Buffs)
	st.BuffTiles = decayBuffTiles(st.BuffTiles)

	for i := range st.Units {
		if st.Units[i].SkillCooldown > 0 {
			st.Units[i].SkillCooldown--
		}
	}

	st.Round++
	st.CurrentPlayer = game.Player1
	st.P1TurnEnded = false
	st.P2TurnEnded = false
	return st
}

// decayBuffs decrements every buff's duration and drops expired ones.
func decayBuffs(buffs game.UnitBuffs) game.UnitBuffs {
	if len(buffs) == 0 {
		return buffs
	}
	out := make(game.UnitBuffs, len(buffs))
	for id, list := range buffs {
		kept := make([]game.Buff, 0, len(list))
		for _, b := range list {
			b.Duration--
			if b.Duration > 0 {
				kept = append(kept, b)
			}
		}
		if len(kept) > 0 {
			out[id] = kept
		}
	}
	return out
}

// decayBuffTiles decrements tile durations and drops expired tiles.
func decayBuffTiles(tiles []game.BuffTile) []game.BuffTile {
	kept := make([]game.BuffTile, 0, len(tiles))
	for _, t := range tiles {
		t.Duration--
		if t.Duration > 0 {
			kept = append(kept, t)
		}
	}
	return kept
}
