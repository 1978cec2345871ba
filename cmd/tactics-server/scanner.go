package main

import (
	"time"

	"github.com/gridtactics/tactics/internal/logging"
	"github.com/gridtactics/tactics/internal/match"
	"github.com/gridtactics/tactics/internal/storage"
)

// startTimeoutScanner periodically expires matches whose action
// deadline has passed. Expired matches finish with no winner; handling
// is delegated to match.HandleTimedOut, which re-checks status so a
// row resolved between listing and handling is left alone.
func startTimeoutScanner(repo storage.Repository) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			matches, err := repo.FindTimedOutMatches(time.Now())
			if err != nil {
				logging.Error("timeout scanner failed to list matches", err, nil)
				continue
			}
			// process sequentially, which keeps SQLite happy
			for i := range matches {
				m, err := repo.GetMatchByID(matches[i].ID)
				if err != nil || m == nil {
					continue
				}
				if err := match.HandleTimedOut(repo, m); err != nil {
					logging.Error("failed to expire match", err, nil)
				}
			}
		}
	}()
}
