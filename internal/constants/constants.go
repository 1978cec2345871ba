package constants

// Centralized constants for env keys, routes, JSON keys and error
// messages shared across the API and server binaries.
const (
	// Environment variable keys
	EnvConfigPath = "TACTICS_CONFIG"
	EnvDBPath     = "TACTICS_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteVersion     = "/version"
	RouteMatches     = "/matches"
	RouteMatchesJoin = "/matches/join"
	RouteMatchByCode = "/matches/:matchCode"
	RouteMatchAction = "/matches/:matchCode/action"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyReason = "reason"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrInvalidMatchCode      = "Invalid match code"
	ErrMatchNotFound         = "Match not found"
	ErrMatchNotInProgress    = "Match is not in progress"
	ErrMatchFull             = "Match is full"
	ErrUnknownSkill          = "Unknown hero skill"
	ErrPlayerNameRequired    = "player_name is required"
	ErrFailedCreateMatch     = "Failed to create match"
	ErrFailedUpdateMatch     = "Failed to update match"
	ErrFailedLoadMatchState  = "Failed to load match state"
	ErrFailedStoreAction     = "Failed to store action"
	ErrPlayerNotInThisMatch  = "Player is not part of this match"
	ErrActionRejected        = "Action rejected"
	ErrMatchAlreadyFinished  = "Match already finished"
	ErrMatchNotReadyToSubmit = "Match has not started yet"
)

// Log field names
const (
	LogFieldAddr     = "addr"
	LogFieldMatchID  = "match_id"
	LogFieldJoinCode = "join_code"
	LogFieldPlayer   = "player"
	LogFieldReason   = "reason"
)
