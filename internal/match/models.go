package match

import (
	"time"

	"gorm.io/gorm"

	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/snapshot"
)

// Match status values.
const (
	StatusWaitingForOpponent = "waiting_for_opponent"
	StatusInProgress         = "in_progress"
	StatusFinished           = "finished"
)

// Match is the persisted envelope around one simulation. The rules
// engine never sees this type; it works on the decoded snapshot and
// the service layer stores the successor state back into the row.
type Match struct {
	gorm.Model
	MatchUUID string `json:"match_uuid" gorm:"uniqueIndex"`
	JoinCode  string `json:"join_code" gorm:"uniqueIndex"`
	Status    string `json:"status"`

	Player1Name  string `json:"player1_name"`
	Player2Name  string `json:"player2_name"`
	Player1Skill string `json:"player1_skill"`
	Player2Skill string `json:"player2_skill"`

	Winner  string `json:"winner"`
	Message string `json:"message"`

	// Seed anchors the match's deterministic RNG stream. Together with
	// ActionCount it makes every applied action replayable.
	Seed        int64 `json:"-"`
	ActionCount int   `json:"action_count"`

	// Snapshot holds the versioned encoding of the current state.
	Snapshot []byte `json:"-" gorm:"column:snapshot;type:blob"`

	// ActionDeadline is when the match times out for inactivity. It
	// resets whenever an action is accepted.
	ActionDeadline time.Time `json:"action_deadline"`
}

// State decodes the stored snapshot into a match state.
func (m *Match) State() (game.GameState, error) {
	return snapshot.Decode(m.Snapshot)
}

func (m *Match) setState(st game.GameState) error {
	b, err := snapshot.Encode(st)
	if err != nil {
		return err
	}
	m.Snapshot = b
	return nil
}
