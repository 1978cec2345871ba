package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gridtactics/tactics/internal/match"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps an opened gorm handle as a Repository.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateMatch(m *match.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByID(id uint) (*match.Match, error) {
	var m match.Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) FindMatchByJoinCode(code string) (*match.Match, error) {
	var m match.Match
	if err := r.db.Where("join_code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) UpdateMatch(m *match.Match) error {
	return r.db.Save(m).Error
}

func (r *sqliteRepository) FindTimedOutMatches(now time.Time) ([]match.Match, error) {
	var matches []match.Match
	err := r.db.
		Where("status = ?", match.StatusInProgress).
		Where("action_deadline != ?", time.Time{}).
		Where("action_deadline <= ?", now).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
