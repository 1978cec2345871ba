package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gridtactics/tactics/internal/match"
)

// OpenAndMigrate opens the SQLite database at the given path and keeps
// the schema updated via AutoMigrate. The database file is created on
// first use.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&match.Match{}); err != nil {
		return nil, err
	}
	return db, nil
}
