package storage

import (
	"time"

	"github.com/gridtactics/tactics/internal/match"
)

// Repository is the persistence surface the server uses. The match
// service depends only on the narrow subset it declares itself.
type Repository interface {
	CreateMatch(m *match.Match) error
	GetMatchByID(id uint) (*match.Match, error)
	FindMatchByJoinCode(code string) (*match.Match, error)
	UpdateMatch(m *match.Match) error
	// FindTimedOutMatches returns matches that are in progress and
	// whose action deadline is at or before the provided time. The
	// caller decides how to resolve them.
	FindTimedOutMatches(now time.Time) ([]match.Match, error)
}
