package match

import (
	"time"

	"github.com/gridtactics/tactics/internal/constants"
	"github.com/gridtactics/tactics/internal/logging"
)

// HandleTimedOut finishes a match whose action deadline has passed.
// Nobody wins an abandoned match; the row keeps its last snapshot for
// inspection. Matches no longer in progress are left alone, which
// makes the call safe against scanner races.
func HandleTimedOut(repo MatchRepo, m *Match) error {
	if m.Status != StatusInProgress {
		return nil
	}
	if m.ActionDeadline.IsZero() || time.Now().Before(m.ActionDeadline) {
		return nil
	}
	m.Status = StatusFinished
	m.Winner = ""
	m.Message = "Match ended due to inactivity"
	m.ActionDeadline = time.Time{}
	logging.Info("finishing timed-out match", logging.Fields{
		constants.LogFieldMatchID:  m.ID,
		constants.LogFieldJoinCode: m.JoinCode,
	})
	return repo.UpdateMatch(m)
}
