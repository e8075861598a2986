package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/service"
)

// ListScenarios returns the loaded pack with each scenario's tokens.
// Random events are not exposed.
func (h *SessionHandler) ListScenarios(c *gin.Context) {
	scenarios := make([]service.ScenarioView, 0, h.pack.Len())
	for _, sc := range h.pack.Scenarios {
		scenarios = append(scenarios, service.ScenarioView{ID: sc.ID, Title: sc.Title, Description: sc.Description, Tokens: sc.Tokens})
	}
	c.JSON(http.StatusOK, gin.H{"name": h.pack.Name, "scenarios": scenarios})
}

// Stats returns aggregate activity across all sessions.
func (h *SessionHandler) Stats(c *gin.Context) {
	st, err := service.Stats(h.repo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, st)
}
