package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/service"
)

// codeParam reads and validates the :code route param. It writes the 400
// response itself and returns "" when the code is malformed.
func codeParam(c *gin.Context) string {
	code := sessionCode(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionCode})
	}
	return code
}

// respond writes the session view.
func (h *SessionHandler) respond(c *gin.Context, status int, s *game.Session) {
	c.JSON(status, service.BuildView(s, h.pack))
}

// publish pushes the view of s to stream subscribers. The service calls it
// while the session is locked, so frames leave in transition order.
func (h *SessionHandler) publish(s *game.Session) {
	if err := h.hub.Publish(s.Code, service.BuildView(s, h.pack)); err != nil {
		logging.Warn("failed to publish session snapshot", logging.Fields{constants.LogFieldSessionCode: s.Code, "error": err.Error()})
	}
}

// CreateSession starts a new playthrough of the loaded pack.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	s, err := service.StartSession(h.repo, h.pack)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedCreateSession)
		return
	}
	h.respond(c, http.StatusCreated, s)
}

// GetSession returns the current snapshot of a session.
func (h *SessionHandler) GetSession(c *gin.Context) {
	code := codeParam(c)
	if code == "" {
		return
	}
	s, err := service.GetSession(h.repo, code)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedEncodeSession)
		return
	}
	h.respond(c, http.StatusOK, s)
}

// Commit plays a token from the current scenario and returns the debrief.
func (h *SessionHandler) Commit(c *gin.Context) {
	code := codeParam(c)
	if code == "" {
		return
	}
	var body struct {
		TokenID string `json:"token_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	tokenID := strings.TrimSpace(body.TokenID)
	if tokenID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTokenRequired})
		return
	}
	s, err := service.CommitToken(h.repo, h.pack, code, tokenID, h.roller, h.publish)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedUpdateSession)
		return
	}
	h.respond(c, http.StatusOK, s)
}

// Advance dismisses the debrief and moves to the next scenario or the end.
func (h *SessionHandler) Advance(c *gin.Context) {
	code := codeParam(c)
	if code == "" {
		return
	}
	s, err := service.AdvanceSession(h.repo, h.pack, code, h.publish)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedUpdateSession)
		return
	}
	h.respond(c, http.StatusOK, s)
}

// Restart resets the session from any phase.
func (h *SessionHandler) Restart(c *gin.Context) {
	code := codeParam(c)
	if code == "" {
		return
	}
	s, err := service.RestartSession(h.repo, h.pack, code, h.publish)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedUpdateSession)
		return
	}
	h.respond(c, http.StatusOK, s)
}

// History lists the decisions recorded for a session across playthroughs.
func (h *SessionHandler) History(c *gin.Context) {
	code := codeParam(c)
	if code == "" {
		return
	}
	decisions, err := service.History(h.repo, code)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchHistory)
		return
	}
	if decisions == nil {
		decisions = []game.Decision{}
	}
	out, err := MarshalIntoSnakeTimestamps(decisions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	c.JSON(http.StatusOK, out)
}
