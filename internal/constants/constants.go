package constants

// Environment variable keys read outside internal/config.
const (
	EnvConfigPath  = "SMARTSANSTHA_CONFIG"
	EnvHealthURL   = "SMARTSANSTHA_HEALTH_URL"
	EnvAllowOrigin = "SMARTSANSTHA_ALLOW_ORIGIN"
)

// Routes used by the backend router
const (
	RouteAPIPrefix        = "/api"
	RouteScenarios        = "/scenarios"
	RouteSessions         = "/sessions"
	RouteSessionByCode    = "/sessions/:code"
	RouteSessionCommit    = "/sessions/:code/commit"
	RouteSessionAdvance   = "/sessions/:code/advance"
	RouteSessionRestart   = "/sessions/:code/restart"
	RouteSessionHistory   = "/sessions/:code/history"
	RouteSessionStream    = "/sessions/:code/stream"
	RouteStats            = "/stats"
	RouteVersion          = "/version"
	DefaultHealthCheckURL = "http://127.0.0.1:8080/api/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidSessionCode   = "Invalid session code"
	ErrSessionNotFound      = "Session not found"
	ErrFailedCreateSession  = "Failed to create session"
	ErrFailedUpdateSession  = "Failed to update session"
	ErrFailedFetchHistory   = "Failed to fetch history"
	ErrFailedFetchStats     = "Failed to fetch stats"
	ErrFailedEncodeSession  = "Failed to encode session"
	ErrTokenRequired        = "token_id is required"
	ErrUnknownToken         = "Token is not offered by the current scenario"
	ErrNoDecisionPending    = "No decision is pending; advance or restart first"
	ErrNothingToAdvance     = "Nothing to advance from; commit a token first"
	ErrScenarioPackMismatch = "Session does not match the loaded scenario pack"
	ErrFailedOpenStream     = "Failed to open stream"
)

// Logging field names
const (
	LogFieldSessionCode = "session_code"
	LogFieldScenarioID  = "scenario_id"
	LogFieldTokenID     = "token_id"
	LogFieldEvent       = "event"
	LogFieldFreedom     = "freedom"
	LogFieldOrder       = "order"
	LogFieldVerdict     = "verdict"
	LogFieldPack        = "pack"
	LogFieldPath        = "path"
	LogFieldCount       = "count"
	LogFieldAddr        = "addr"
)
