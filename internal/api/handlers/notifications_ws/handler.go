package notifications_ws

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/middleware"
	ws "github.com/m04kA/SMC-CompanionAdmin/internal/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// доступ уже проверен SessionAuth по cookie
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub           Hub
	notifications NotificationSource
	logger        Logger
}

func NewHandler(hub Hub, notifications NotificationSource, logger Logger) *Handler {
	return &Handler{
		hub:           hub,
		notifications: notifications,
		logger:        logger,
	}
}

// Handle GET /api/v1/admin/ws
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /admin/ws - Upgrade failed: %v", err)
		return
	}

	userID := ""
	if sess, ok := middleware.GetSession(r.Context()); ok {
		userID = strconv.FormatInt(sess.User.ID, 10)
	}

	// Активное уведомление отправляем сразу, чтобы новый клиент его не пропустил
	if n := h.notifications.Current(); n != nil {
		msg, err := ws.NewMessage(ws.TypeNotification, ws.NotificationPayload{
			Message:   n.Message,
			Type:      n.Type,
			ExpiresAt: n.ExpiresAt,
		}).JSON()
		if err == nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.logger.Warn("GET /admin/ws - Failed to send current notification: %v", err)
				conn.Close()
				return
			}
		}
	}

	client := ws.NewClient(userID)
	if !h.hub.Register(client) {
		h.logger.Warn("GET /admin/ws - Hub stopped, closing connection: user_id=%s", userID)
		conn.Close()
		return
	}
	h.logger.Info("GET /admin/ws - Client connected: user_id=%s", userID)

	go h.writePump(conn, client)
	go h.readPump(conn, client)
}

// writePump сообщения hub -> соединение, плюс ping
func (h *Handler) writePump(conn *websocket.Conn, client *ws.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump входящие сообщения не обрабатываются, читаем только ради pong и закрытия
func (h *Handler) readPump(conn *websocket.Conn, client *ws.Client) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("GET /admin/ws - Read error: %v", err)
			}
			return
		}
	}
}
