package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridtactics/tactics/internal/constants"
	"github.com/gridtactics/tactics/internal/game"
	"github.com/gridtactics/tactics/internal/match"
)

// SubmitAction runs one player action through the rules engine. The
// request body is the action itself; legality is entirely the
// validator's call and a rejection comes back with its reason.
func (h *MatchHandler) SubmitAction(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}
	var action game.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	m, st, res, err := match.Submit(h.repo, code, action, h.policy, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		case errors.Is(err, match.ErrMatchNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotInProgress})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}
	if !res.Accepted {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			constants.JSONKeyError:  constants.ErrActionRejected,
			constants.JSONKeyReason: res.Reason,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": m, "state": st})
}
