package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/live"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

// checkOrigin accepts same-origin requests, requests without an Origin
// header, and the origin named by SMARTSANSTHA_ALLOW_ORIGIN ("*" for any).
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if allowed := os.Getenv(constants.EnvAllowOrigin); allowed != "" {
		return allowed == "*" || allowed == origin
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// Stream upgrades to a websocket and pushes a snapshot after every
// transition of the session. The current snapshot is sent first; the
// subscription is taken together with that snapshot so no transition is
// lost or replayed.
func (h *SessionHandler) Stream(c *gin.Context) {
	code := codeParam(c)
	if code == "" {
		return
	}
	var sub *live.Subscriber
	s, err := service.Observe(h.repo, code, func() { sub = h.hub.Subscribe(code) })
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedOpenStream)
		return
	}
	initial, err := json.Marshal(service.BuildView(s, h.pack))
	if err != nil {
		h.hub.Unsubscribe(sub)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedOpenStream})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.Unsubscribe(sub)
		// Upgrade already wrote the HTTP error.
		logging.Warn("stream upgrade failed", logging.Fields{constants.LogFieldSessionCode: code, "error": err.Error()})
		return
	}
	h.hub.Serve(conn, sub, initial)
}
