package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridtactics/tactics/internal/constants"
	"github.com/gridtactics/tactics/internal/dedupe"
	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/match"
)

type matchView struct {
	Match *match.Match    `json:"match"`
	State *game.GameState `json:"state,omitempty"`
}

// GetMatch returns the match row and, once the match has started, the
// decoded state. Concurrent polls for the same code share one load.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}

	v, err, _ := dedupe.MatchGroup.Do(code, func() (interface{}, error) {
		m, err := h.repo.FindMatchByJoinCode(code)
		if err != nil || m == nil {
			return nil, match.ErrMatchNotFound
		}
		view := matchView{Match: m}
		if len(m.Snapshot) > 0 {
			st, err := m.State()
			if err != nil {
				return nil, err
			}
			view.State = &st
		}
		return view, nil
	})
	if err != nil {
		if err == match.ErrMatchNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadMatchState})
		return
	}
	c.JSON(http.StatusOK, v.(matchView))
}
