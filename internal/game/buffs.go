package game

// BuffType enumerates the effects a buff tile can grant. Three are
// positive and three are negative; which one a unit receives is decided
// by the injected RNG stream when the tile triggers.
type BuffType string

const (
	BuffPower    BuffType = "POWER"    // +2 attack
	BuffLife     BuffType = "LIFE"     // +3 HP instantly, capped at max
	BuffSpeed    BuffType = "SPEED"    // +1 move range
	BuffWeakness BuffType = "WEAKNESS" // -1 attack
	BuffBleed    BuffType = "BLEED"    // -1 HP at each round end
	BuffSlow     BuffType = "SLOW"     // -1 move range
)

// BuffTypes lists all types in their RNG selection order. The order is
// part of the deterministic contract: rng.Intn(len(BuffTypes)) indexes it.
var BuffTypes = []BuffType{BuffPower, BuffLife, BuffSpeed, BuffWeakness, BuffBleed, BuffSlow}

// BuffDuration is how many round ends a buff survives.
const BuffDuration = 2

// Buff is one effect instance attached to a unit. Buffs of the same
// type do not stack; reapplying refreshes the duration.
type Buff struct {
	Type     BuffType `json:"type"`
	Duration int      `json:"duration"`
}

// NewBuff creates a buff of the given type with the full duration.
func NewBuff(t BuffType) Buff {
	return Buff{Type: t, Duration: BuffDuration}
}

// AttackBonus is the buff's contribution to the unit's effective attack power.
func (b Buff) AttackBonus() int {
	switch b.Type {
	case BuffPower:
		return 2
	case BuffWeakness:
		return -1
	}
	return 0
}

// MoveBonus is the buff's contribution to the unit's effective move range.
func (b Buff) MoveBonus() int {
	switch b.Type {
	case BuffSpeed:
		return 1
	case BuffSlow:
		return -1
	}
	return 0
}

// InstantHP is the one-time HP change applied when the buff is granted.
func (b Buff) InstantHP() int {
	if b.Type == BuffLife {
		return 3
	}
	return 0
}

// BleedDamage is the HP loss applied at each round end while the buff holds.
func (b Buff) BleedDamage() int {
	if b.Type == BuffBleed {
		return 1
	}
	return 0
}
