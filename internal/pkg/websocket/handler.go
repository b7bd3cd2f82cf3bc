package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Moderation feed
// @Description Upgrades to a WebSocket that receives a notice whenever content is hidden pending review. The token may be passed as the token query parameter.
// @Tags moderation
// @Security BearerAuth
// @Param token query string false "JWT for clients that cannot set headers"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden"
// @Router /ws/moderation [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Set by the auth middleware
	memberIDValue, exists := c.Get("memberID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Wymagane uwierzytelnienie",
		})
		return
	}
	memberID, _ := memberIDValue.(int64)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("memberID", memberID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		memberID: memberID,
		logger:   h.logger,
	}
	if !h.hub.Register(client) {
		h.logger.Warn().Int64("memberID", memberID).Msg("Moderation feed stopped, closing connection")
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
