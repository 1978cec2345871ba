package rules

import "github.com/gridtactics/tactics/internal/game"

// applyDeathChoice resolves the oldest pending choice by spawning the
// chosen artifact at the dead minion's last position. Choices resolve
// strictly in the order the deaths occurred.
func (e *Engine) applyDeathChoice(st game.GameState, choice game.DeathChoiceType) game.GameState {
	if len(st.PendingDeaths) == 0 {
		panic("rules: death choice with nothing pending")
	}
	pending := st.PendingDeaths[0]
	st.PendingDeaths = append([]game.DeathChoice(nil), st.PendingDeaths[1:]...)
	if len(st.PendingDeaths) == 0 {
		st.PendingDeaths = nil
	}

	switch choice {
	case game.SpawnObstacle:
		return spawnObstacle(st, pending.Pos)
	case game.SpawnBuffTile:
		return spawnBuffTile(st, pending.Pos)
	}
	panic("rules: death choice with unknown spawn type " + string(choice))
}
