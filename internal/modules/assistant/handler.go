package assistant

import (
	"context"
	"net/http"
	"time"

	jwtsvc "scraply/internal/pkg/jwt"
	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Origin is checked by the CORS layer for the REST surface; the ws
	// endpoint authenticates via token instead.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwtsvc.Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, hub *Hub, jwt *jwtsvc.Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt, logger: logger}
}

// RegisterRoutes mounts the chat endpoints on the public group. The ws
// endpoint authenticates itself from the token query parameter because
// browsers cannot set headers on websocket upgrades.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	chat := v1.Group("/chat")
	{
		chat.POST("", h.Chat)
		chat.GET("/ws", h.HandleWebSocket)
	}
}

// Chat answers a single user message.
// @Summary		Chat with the assistant
// @Description	Sends one message to the e-waste assistant and returns its reply. Upstream trouble degrades to a fallback reply rather than an error.
// @Tags		Chat
// @Accept		json
// @Produce		json
// @Param		request	body	ChatRequest	true	"User message"
// @Success		200	{object}	map[string]interface{} "Assistant reply"
// @Failure		400	{object}	map[string]interface{} "Missing message"
// @Router		/chat [POST]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	reply := h.service.Chat(c.Request.Context(), req.Message)
	response.Success(c, http.StatusOK, ChatResponse{Reply: reply})
}

// HandleWebSocket runs an interactive assistant session.
//
// Endpoint: GET /chat/ws?token=JWT_TOKEN
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	sess := h.hub.Register(userID, conn)
	h.logger.Info().
		Int64("user_id", userID).
		Int("open_sessions", h.hub.SessionCount()).
		Msg("assistant session opened")

	defer func() {
		h.hub.Unregister(userID)
		h.logger.Info().
			Int64("user_id", userID).
			Int("open_sessions", h.hub.SessionCount()).
			Msg("assistant session closed")
	}()

	sess.SetPongDeadline(60 * time.Second)

	go h.pingLoop(sess)

	h.readLoop(sess, userID)
}

func (h *Handler) pingLoop(sess *session) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := sess.Ping(); err != nil {
			return
		}
	}
}

func (h *Handler) readLoop(sess *session, userID int64) {
	for {
		var msg WSClientMessage
		if err := sess.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				h.logger.Error().Err(err).Int64("user_id", userID).Msg("websocket read failed")
			}
			return
		}

		switch msg.Type {
		case "message":
			if msg.Message == "" {
				_ = sess.WriteJSON(NewErrorFrame("EMPTY_MESSAGE", "message is required"))
				continue
			}
			reply := h.service.Chat(context.Background(), msg.Message)
			_ = sess.WriteJSON(NewReplyFrame(reply))
		case "ping":
			_ = sess.WriteJSON(NewPongFrame())
		default:
			_ = sess.WriteJSON(NewErrorFrame("UNKNOWN_TYPE", "Unknown message type: "+msg.Type))
		}
	}
}
