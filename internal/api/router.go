package api

import (
	"github.com/gin-gonic/gin"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
)

// NewRouter wires every API route onto a gin engine.
func NewRouter(h *SessionHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteScenarios, h.ListScenarios)
		apiRoutes.GET(constants.RouteStats, h.Stats)
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.POST(constants.RouteSessions, h.CreateSession)
		apiRoutes.GET(constants.RouteSessionByCode, h.GetSession)
		apiRoutes.POST(constants.RouteSessionCommit, h.Commit)
		apiRoutes.POST(constants.RouteSessionAdvance, h.Advance)
		apiRoutes.POST(constants.RouteSessionRestart, h.Restart)
		apiRoutes.GET(constants.RouteSessionHistory, h.History)
		apiRoutes.GET(constants.RouteSessionStream, h.Stream)
	}
	return router
}
