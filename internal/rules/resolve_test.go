package rules

import (
	"testing"

	"github.com/gridtactics/tactics/internal/board"
	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/skills"
)

func newTestEngine(policy DeathChoicePolicy) *Engine {
	return New(skills.Apply, policy, game.NewSeededRNG(1))
}

func mustSubmit(t *testing.T, e *Engine, st game.GameState, a game.Action) game.GameState {
	t.Helper()
	next, res := e.Submit(st, a)
	if !res.Accepted {
		t.Fatalf("action %+v rejected: %s", a, res.Reason)
	}
	return next
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewHero("u2", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	next := mustSubmit(t, e, st, game.Action{Type: game.ActionMove, Player: game.Player1, ActingUnitID: "u1", TargetPos: pos(0, 1)})
	if st.Units[0].Pos != (board.Position{X: 0, Y: 0}) {
		t.Fatalf("input state mutated: %v", st.Units[0].Pos)
	}
	if next.Units[0].Pos != (board.Position{X: 0, Y: 1}) {
		t.Fatalf("successor state missing the move: %v", next.Units[0].Pos)
	}
}

func TestGuardianRedirectTieBreak(t *testing.T) {
	// two tanks flank the archer; the lower-id tank takes the hit
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 2, Y: 1}, "mend"),
		game.NewMinion("u3", game.Player2, game.MinionTank, board.Position{X: 1, Y: 2}),
		game.NewMinion("u5", game.Player2, game.MinionArcher, board.Position{X: 2, Y: 2}),
		game.NewMinion("u7", game.Player2, game.MinionTank, board.Position{X: 3, Y: 2}),
	)
	next := mustSubmit(t, e, st, game.Action{Type: game.ActionAttack, Player: game.Player1, ActingUnitID: "u1", TargetUnitID: "u5"})

	if got := next.UnitByID("u5").HP; got != game.ArcherHP {
		t.Fatalf("redirected target lost HP: %d", got)
	}
	if got := next.UnitByID("u3").HP; got != game.TankHP-game.HeroAttack {
		t.Fatalf("lowest-id tank should take the damage, HP=%d", got)
	}
	if got := next.UnitByID("u7").HP; got != game.TankHP {
		t.Fatalf("higher-id tank should be untouched, HP=%d", got)
	}
}

func TestGuardianIgnoresDeadAndUnadjacentTanks(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 2, Y: 1}, "mend"),
		game.NewMinion("u2", game.Player2, game.MinionTank, board.Position{X: 1, Y: 2}),
		game.NewMinion("u3", game.Player2, game.MinionArcher, board.Position{X: 2, Y: 2}),
		game.NewMinion("u4", game.Player2, game.MinionTank, board.Position{X: 0, Y: 4}),
	)
	st.Units[1].Alive = false
	next := mustSubmit(t, e, st, game.Action{Type: game.ActionAttack, Player: game.Player1, ActingUnitID: "u1", TargetUnitID: "u3"})
	if got := next.UnitByID("u3").HP; got != game.ArcherHP-game.HeroAttack {
		t.Fatalf("with no live adjacent tank the target takes the hit, HP=%d", got)
	}
}

func TestHeroDeathEndsMatch(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewMinion("u1", game.Player1, game.MinionAssassin, board.Position{X: 2, Y: 1}),
		game.NewHero("u2", game.Player2, board.Position{X: 2, Y: 2}, "mend"),
	)
	st.Units[1].HP = 1
	next := mustSubmit(t, e, st, game.Action{Type: game.ActionAttack, Player: game.Player1, ActingUnitID: "u1", TargetUnitID: "u2"})
	if !next.GameOver || next.Winner != game.Player1 {
		t.Fatalf("hero death should end the match for player 1, got over=%v winner=%s", next.GameOver, next.Winner)
	}
	if res := Validate(next, game.Action{Type: game.ActionEndTurn, Player: game.Player1}); res.Reason != ReasonGameAlreadyOver {
		t.Fatalf("finished match should reject actions, got %+v", res)
	}
}

func TestMinionDeathQueuesChoice(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewMinion("u1", game.Player1, game.MinionAssassin, board.Position{X: 2, Y: 1}),
		game.NewMinion("u2", game.Player2, game.MinionAssassin, board.Position{X: 2, Y: 2}),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	next := mustSubmit(t, e, st, game.Action{Type: game.ActionAttack, Player: game.Player1, ActingUnitID: "u1", TargetUnitID: "u2"})

	if len(next.PendingDeaths) != 1 {
		t.Fatalf("expected one pending death choice, got %v", next.PendingDeaths)
	}
	pd := next.PendingDeaths[0]
	if pd.Owner != game.Player2 || pd.Pos != (board.Position{X: 2, Y: 2}) {
		t.Fatalf("unexpected pending choice %+v", pd)
	}

	// the owner answers with a buff tile; play resumes
	next = mustSubmit(t, e, next, game.Action{Type: game.ActionDeathChoice, Player: game.Player2, Choice: game.SpawnBuffTile})
	if len(next.PendingDeaths) != 0 {
		t.Fatalf("choice should clear the queue, got %v", next.PendingDeaths)
	}
	tile := next.BuffTileAt(board.Position{X: 2, Y: 2})
	if tile == nil || tile.Duration != game.BuffTileDuration {
		t.Fatalf("expected a fresh buff tile at the death cell, got %+v", tile)
	}
	if res := Validate(next, game.Action{Type: game.ActionEndTurn, Player: game.Player1}); !res.Accepted {
		t.Fatalf("play should resume after the choice, got %+v", res)
	}
}

func TestMinionDeathAutoResolvePolicies(t *testing.T) {
	st := testState(
		game.NewMinion("u1", game.Player1, game.MinionAssassin, board.Position{X: 2, Y: 1}),
		game.NewMinion("u2", game.Player2, game.MinionAssassin, board.Position{X: 2, Y: 2}),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	kill := game.Action{Type: game.ActionAttack, Player: game.Player1, ActingUnitID: "u1", TargetUnitID: "u2"}

	next := mustSubmit(t, newTestEngine(PolicyObstacle), st, kill)
	if !next.HasObstacleAt(board.Position{X: 2, Y: 2}) || len(next.PendingDeaths) != 0 {
		t.Fatalf("obstacle policy should spawn immediately, got %+v", next)
	}

	next = mustSubmit(t, newTestEngine(PolicyBuffTile), st, kill)
	if next.BuffTileAt(board.Position{X: 2, Y: 2}) == nil || len(next.PendingDeaths) != 0 {
		t.Fatalf("buff tile policy should spawn immediately, got %+v", next)
	}
}

func TestRoundRobinTurnOrder(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewHero("u2", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	st = mustSubmit(t, e, st, game.Action{Type: game.ActionEndTurn, Player: game.Player1})
	if st.CurrentPlayer != game.Player2 || st.Round != 1 {
		t.Fatalf("after player 1 ends: player=%s round=%d", st.CurrentPlayer, st.Round)
	}
	st = mustSubmit(t, e, st, game.Action{Type: game.ActionEndTurn, Player: game.Player2})
	if st.CurrentPlayer != game.Player1 || st.Round != 2 {
		t.Fatalf("after both end: player=%s round=%d", st.CurrentPlayer, st.Round)
	}
	if st.P1TurnEnded || st.P2TurnEnded {
		t.Fatalf("turn flags should reset at round end")
	}
}

func endRoundOnce(t *testing.T, e *Engine, st game.GameState) game.GameState {
	t.Helper()
	st = mustSubmit(t, e, st, game.Action{Type: game.ActionEndTurn, Player: game.Player1})
	return mustSubmit(t, e, st, game.Action{Type: game.ActionEndTurn, Player: game.Player2})
}

func TestAttritionFloors(t *testing.T) {
	// TANK(5), ARCHER(3), ASSASSIN(2) die after exactly that many
	// round ends; heroes are exempt
	e := newTestEngine(PolicyObstacle)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewMinion("u2", game.Player1, game.MinionTank, board.Position{X: 1, Y: 0}),
		game.NewMinion("u3", game.Player1, game.MinionArcher, board.Position{X: 2, Y: 0}),
		game.NewMinion("u4", game.Player1, game.MinionAssassin, board.Position{X: 3, Y: 0}),
		game.NewHero("u5", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	deadAfter := map[string]int{"u2": 5, "u3": 3, "u4": 2}
	for round := 1; round <= 5; round++ {
		st = endRoundOnce(t, e, st)
		for id, at := range deadAfter {
			u := st.UnitByID(id)
			wantAlive := round < at
			if u.Alive != wantAlive {
				t.Fatalf("round %d: %s alive=%v, want %v", round, id, u.Alive, wantAlive)
			}
		}
	}
	if h := st.UnitByID("u1"); !h.Alive || h.HP != game.HeroHP {
		t.Fatalf("hero must be exempt from attrition, got %d HP alive=%v", h.HP, h.Alive)
	}
}

func TestAttritionDeathsSpawnInUnitOrder(t *testing.T) {
	// both assassins die in the same pass; spawn ids follow unit order
	e := newTestEngine(PolicyObstacle)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewMinion("u2", game.Player1, game.MinionAssassin, board.Position{X: 1, Y: 0}),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
		game.NewMinion("u4", game.Player2, game.MinionAssassin, board.Position{X: 3, Y: 4}),
	)
	st = endRoundOnce(t, e, st)
	st = endRoundOnce(t, e, st)
	if len(st.Obstacles) != 2 {
		t.Fatalf("expected two obstacles, got %v", st.Obstacles)
	}
	if st.Obstacles[0].Pos != (board.Position{X: 1, Y: 0}) || st.Obstacles[1].Pos != (board.Position{X: 3, Y: 4}) {
		t.Fatalf("obstacles not spawned in unit order: %v", st.Obstacles)
	}
}

func TestBuffTileConsumptionDeterministic(t *testing.T) {
	build := func() game.GameState {
		st := testState(
			game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
			game.NewHero("u2", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
		)
		st.BuffTiles = []game.BuffTile{{ID: "tile_1", Pos: board.Position{X: 0, Y: 1}, Duration: 2}}
		return st
	}
	step := game.Action{Type: game.ActionMove, Player: game.Player1, ActingUnitID: "u1", TargetPos: pos(0, 1)}

	first := mustSubmit(t, New(skills.Apply, PolicyPrompt, game.NewSeededRNG(42)), build(), step)
	second := mustSubmit(t, New(skills.Apply, PolicyPrompt, game.NewSeededRNG(42)), build(), step)

	if len(first.BuffTiles) != 0 {
		t.Fatalf("tile should be consumed, got %v", first.BuffTiles)
	}
	b1, b2 := first.Buffs["u1"], second.Buffs["u1"]
	if len(b1) != 1 || len(b2) != 1 || b1[0] != b2[0] {
		t.Fatalf("same seed must grant the same buff, got %v vs %v", b1, b2)
	}
	want := game.BuffTypes[game.NewSeededRNG(42).Intn(len(game.BuffTypes))]
	if b1[0].Type != want {
		t.Fatalf("buff type %s, want %s from the seeded stream", b1[0].Type, want)
	}
}

func TestBuffExpiryAfterTwoRounds(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewHero("u2", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	st.Buffs["u1"] = []game.Buff{game.NewBuff(game.BuffPower)}
	st.BuffTiles = []game.BuffTile{{ID: "tile_1", Pos: board.Position{X: 2, Y: 2}, Duration: 2}}

	st = endRoundOnce(t, e, st)
	if len(st.Buffs["u1"]) != 1 || st.Buffs["u1"][0].Duration != 1 {
		t.Fatalf("buff should survive the first round end, got %v", st.Buffs["u1"])
	}
	if len(st.BuffTiles) != 1 || st.BuffTiles[0].Duration != 1 {
		t.Fatalf("tile should survive the first round end, got %v", st.BuffTiles)
	}
	st = endRoundOnce(t, e, st)
	if len(st.Buffs["u1"]) != 0 {
		t.Fatalf("buff should expire after two round ends, got %v", st.Buffs["u1"])
	}
	if len(st.BuffTiles) != 0 {
		t.Fatalf("tile should expire after two round ends, got %v", st.BuffTiles)
	}
}

func TestBleedDamageAtRoundEnd(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewHero("u2", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	st.Buffs["u1"] = []game.Buff{game.NewBuff(game.BuffBleed)}
	st = endRoundOnce(t, e, st)
	if got := st.UnitByID("u1").HP; got != game.HeroHP-1 {
		t.Fatalf("bleed should cost 1 HP at round end, got %d", got)
	}
}

func TestBleedCanKillHeroAndEndMatch(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 0, Y: 0}, "mend"),
		game.NewHero("u2", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	st.Units[0].HP = 1
	st.Buffs["u1"] = []game.Buff{game.NewBuff(game.BuffBleed)}
	st = endRoundOnce(t, e, st)
	if !st.GameOver || st.Winner != game.Player2 {
		t.Fatalf("hero bleeding out should end the match, got over=%v winner=%s", st.GameOver, st.Winner)
	}
}

func TestUseSkillCooldownCycle(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 2, Y: 2}, skills.Shockwave),
		game.NewMinion("u2", game.Player2, game.MinionTank, board.Position{X: 2, Y: 3}),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	use := game.Action{Type: game.ActionUseSkill, Player: game.Player1, ActingUnitID: "u1"}

	st = mustSubmit(t, e, st, use)
	if got := st.UnitByID("u2").HP; got != game.TankHP-1 {
		t.Fatalf("shockwave should hit the adjacent tank, HP=%d", got)
	}
	if got := st.UnitByID("u1").SkillCooldown; got != game.SkillCooldownRounds {
		t.Fatalf("cooldown should start at %d, got %d", game.SkillCooldownRounds, got)
	}
	if res := Validate(st, use); res.Accepted || res.Reason != ReasonSkillNotReady {
		t.Fatalf("immediate reuse should be SkillNotReady, got %+v", res)
	}

	st = endRoundOnce(t, e, st)
	st = endRoundOnce(t, e, st)
	if got := st.UnitByID("u1").SkillCooldown; got != 0 {
		t.Fatalf("cooldown should recover after two round ends, got %d", got)
	}
	if res := Validate(st, use); !res.Accepted {
		t.Fatalf("recovered skill should be usable, got %+v", res)
	}
}

func TestSkillKillGetsDeathResolution(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewHero("u1", game.Player1, board.Position{X: 2, Y: 2}, skills.Shockwave),
		game.NewMinion("u2", game.Player2, game.MinionAssassin, board.Position{X: 2, Y: 3}),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	st.Units[1].HP = 1
	st = mustSubmit(t, e, st, game.Action{Type: game.ActionUseSkill, Player: game.Player1, ActingUnitID: "u1"})
	if len(st.PendingDeaths) != 1 || st.PendingDeaths[0].UnitID != "u2" {
		t.Fatalf("skill kill should queue a death choice, got %v", st.PendingDeaths)
	}
}

func TestMoveAndAttackUsesPostMovePosition(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewMinion("u1", game.Player1, game.MinionAssassin, board.Position{X: 0, Y: 0}),
		game.NewMinion("u2", game.Player2, game.MinionArcher, board.Position{X: 3, Y: 1}),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	a := game.Action{
		Type:         game.ActionMoveAndAttack,
		Player:       game.Player1,
		ActingUnitID: "u1",
		TargetPos:    pos(3, 0),
		TargetUnitID: "u2",
	}
	next := mustSubmit(t, e, st, a)
	if next.UnitByID("u1").Pos != (board.Position{X: 3, Y: 0}) {
		t.Fatalf("mover should end at the move target, got %v", next.UnitByID("u1").Pos)
	}
	if got := next.UnitByID("u2").HP; got != game.ArcherHP-game.AssassinAttack {
		t.Fatalf("archer should take assassin damage, HP=%d", got)
	}
}

func TestMultipleActionsBeforeEndTurn(t *testing.T) {
	e := newTestEngine(PolicyPrompt)
	st := testState(
		game.NewMinion("u1", game.Player1, game.MinionAssassin, board.Position{X: 0, Y: 0}),
		game.NewHero("u2", game.Player1, board.Position{X: 1, Y: 0}, "mend"),
		game.NewHero("u3", game.Player2, board.Position{X: 4, Y: 4}, "mend"),
	)
	st = mustSubmit(t, e, st, game.Action{Type: game.ActionMove, Player: game.Player1, ActingUnitID: "u1", TargetPos: pos(0, 2)})
	if st.CurrentPlayer != game.Player1 {
		t.Fatalf("a non-END_TURN action must not pass the turn")
	}
	st = mustSubmit(t, e, st, game.Action{Type: game.ActionMove, Player: game.Player1, ActingUnitID: "u2", TargetPos: pos(1, 1)})
	if st.CurrentPlayer != game.Player1 {
		t.Fatalf("the acting player keeps the turn until END_TURN")
	}
}
