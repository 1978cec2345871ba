package rules

import (
	"fmt"

	"github.com/gridtactics/tactics/internal/board"
	"github.com/gridtactics/tactics/internal/game"
)

// applyMove relocates the unit and triggers the buff tile under the
// destination, if any. Used both for MOVE and for the move leg of
// MOVE_AND_ATTACK.
func (e *Engine) applyMove(st game.GameState, unitID string, dest board.Position) game.GameState {
	u := st.UnitByID(unitID)
	if u == nil || !u.Alive {
		panic(fmt.Sprintf("rules: move for unknown or dead unit %q", unitID))
	}
	u.Pos = dest
	if tile := st.BuffTileAt(dest); tile != nil {
		st = e.consumeBuffTile(st, tile.ID, unitID)
	}
	return st
}

// consumeBuffTile removes the tile and grants the stepping unit a buff
// drawn from the injected RNG stream. Same-type buffs refresh rather
// than stack.
func (e *Engine) consumeBuffTile(st game.GameState, tileID, unitID string) game.GameState {
	tiles := make([]game.BuffTile, 0, len(st.BuffTiles))
	for _, t := range st.BuffTiles {
		if t.ID != tileID {
			tiles = append(tiles, t)
		}
	}
	st.BuffTiles = tiles

	buff := game.NewBuff(game.BuffTypes[e.rng.Intn(len(game.BuffTypes))])
	if hp := buff.InstantHP(); hp > 0 {
		u := st.UnitByID(unitID)
		*u = u.Healed(hp)
	}
	if st.Buffs == nil {
		st.Buffs = game.UnitBuffs{}
	}
	st.Buffs[unitID] = refreshBuff(st.Buffs[unitID], buff)
	return st
}

// refreshBuff replaces an existing buff of the same type or appends.
func refreshBuff(buffs []game.Buff, b game.Buff) []game.Buff {
	for i := range buffs {
		if buffs[i].Type == b.Type {
			buffs[i] = b
			return buffs
		}
	}
	return append(buffs, b)
}

// applyAttack resolves one attack: guardian redirect, damage, then
// death resolution for the actual recipient.
func (e *Engine) applyAttack(st game.GameState, attackerID, targetID string) game.GameState {
	attacker := st.UnitByID(attackerID)
	target := st.UnitByID(targetID)
	if attacker == nil || !attacker.Alive {
		panic(fmt.Sprintf("rules: attack by unknown or dead unit %q", attackerID))
	}
	if target == nil || !target.Alive {
		panic(fmt.Sprintf("rules: attack on unknown or dead unit %q", targetID))
	}

	recipient := guardianFor(&st, target)
	if recipient == nil {
		recipient = target
	}
	*recipient = recipient.Damaged(st.EffectiveAttack(attacker))
	if !recipient.Alive {
		st = e.resolveDeath(st, *recipient)
	}
	return st
}

// guardianFor returns the TANK that intercepts damage aimed at target,
// or nil when no guardian qualifies. Candidates are alive friendly
// TANKs orthogonally adjacent to the target, the target itself
// excluded; the unit slice is creation-ordered so the first hit is the
// lowest-id guardian.
func guardianFor(st *game.GameState, target *game.Unit) *game.Unit {
	for i := range st.Units {
		u := &st.Units[i]
		if !u.Alive || !u.IsTank() || u.ID == target.ID {
			continue
		}
		if u.Owner != target.Owner {
			continue
		}
		if u.Pos.AdjacentTo(target.Pos) {
			return u
		}
	}
	return nil
}

// spawnObstacle places a permanent impassable cell at pos.
func spawnObstacle(st game.GameState, pos board.Position) game.GameState {
	id, st := st.NextSpawnID("obstacle")
	st.Obstacles = append(st.Obstacles, game.Obstacle{ID: id, Pos: pos})
	return st
}

// spawnBuffTile places a one-use buff tile at pos with full duration.
func spawnBuffTile(st game.GameState, pos board.Position) game.GameState {
	id, st := st.NextSpawnID("tile")
	st.BuffTiles = append(st.BuffTiles, game.BuffTile{ID: id, Pos: pos, Duration: game.BuffTileDuration})
	return st
}
