package api

import (
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gridtactics/tactics/internal/constants"
	"github.com/gridtactics/tactics/internal/match"
	"github.com/gridtactics/tactics/internal/skills"
)

type CreateMatchPayload struct {
	PlayerName string `json:"player_name"`
	SkillID    string `json:"skill_id"`
}

// CreateMatch opens a match lobby for player 1 and returns the join
// code the opponent uses to enter.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerName == "" || utf8.RuneCountInString(req.PlayerName) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	if !skills.Known(req.SkillID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownSkill})
		return
	}

	seed := h.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	newMatch := match.Match{
		MatchUUID:    uuid.NewString(),
		JoinCode:     generateJoinCode(),
		Status:       match.StatusWaitingForOpponent,
		Player1Name:  req.PlayerName,
		Player1Skill: req.SkillID,
		Seed:         seed,
		Message:      "Match created. Waiting for an opponent.",
	}
	if err := h.repo.CreateMatch(&newMatch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"match_uuid": newMatch.MatchUUID,
		"join_code":  newMatch.JoinCode,
	})
}

type JoinMatchPayload struct {
	JoinCode   string `json:"join_code"`
	PlayerName string `json:"player_name"`
	SkillID    string `json:"skill_id"`
}

// JoinMatch lets player 2 enter via join code and starts the match.
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	var req JoinMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerName == "" || utf8.RuneCountInString(req.PlayerName) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	code := normalizeJoinCode(req.JoinCode)
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return
	}

	m, err := match.Join(h.repo, code, req.PlayerName, req.SkillID, h.stats, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		case errors.Is(err, match.ErrMatchNotJoinable):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchFull})
		case errors.Is(err, match.ErrUnknownSkill):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownSkill})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		}
		return
	}

	st, err := m.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLoadMatchState})
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": m, "state": st})
}
