package match

import "errors"

// MatchRepo is the minimal repository interface the match service
// needs. The storage package's Repository satisfies it.
type MatchRepo interface {
	FindMatchByJoinCode(code string) (*Match, error)
	UpdateMatch(m *Match) error
}

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchNotInProgress = errors.New("match is not in progress")
	ErrMatchNotJoinable   = errors.New("match is not accepting players")
	ErrUnknownSkill       = errors.New("unknown hero skill")
	ErrCorruptSnapshot    = errors.New("stored match snapshot is unreadable")
)
