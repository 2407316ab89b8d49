package handlers

import (
	"net/http"
	"strings"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades connections into the team event stream
type WSHandler struct {
	hub         *events.Hub
	authService *auth.Service
	upgrader    websocket.Upgrader
}

// NewWSHandler creates a new websocket handler. Origin checking reuses the
// CORS allow-list.
func NewWSHandler(hub *events.Hub, authService *auth.Service, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return &WSHandler{
		hub:         hub,
		authService: authService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// Serve godoc
// @Summary Subscribe to team events
// @Description Upgrades to a websocket delivering task:assigned and task:updated events for the caller's team. Authenticate with a bearer header or token query parameter.
// @Tags events
// @Security BearerAuth
// @Param token query string false "Bearer token (browser websocket clients cannot set headers)"
// @Success 101
// @Failure 401 {object} map[string]string
// @Router /ws [get]
func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		return
	}

	client := h.hub.NewClient(conn, claims.UserID, claims.TeamID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
