package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/service"
)

// writeServiceError maps service and engine errors to a status and a
// constant message. Anything unrecognised is a 500 with fallback.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
	case errors.Is(err, engine.ErrUnknownToken):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownToken})
	case errors.Is(err, engine.ErrNotPlaying):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNoDecisionPending})
	case errors.Is(err, engine.ErrNoDebrief):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNothingToAdvance})
	case errors.Is(err, service.ErrPackMismatch), errors.Is(err, engine.ErrUnknownScenario):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrScenarioPackMismatch})
	default:
		logging.Error("request failed", err, logging.Fields{"path": c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
