// Package websocket рассылка событий дашборда подключенным администраторам.
package websocket

import (
	"context"
	"sync"
)

const sendBufferSize = 256

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Gauge количество подключенных клиентов (prometheus.Gauge подходит)
type Gauge interface {
	Set(float64)
}

// Hub хранит активных клиентов и рассылает им сообщения.
// Все изменения набора клиентов проходят через цикл Run.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	// закрывается при остановке Run
	done chan struct{}

	mu    sync.RWMutex
	log   Logger
	gauge Gauge
}

// NewHub создает новый hub; gauge может быть nil
func NewHub(log Logger, gauge Gauge) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, sendBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
		gauge:      gauge,
	}
}

// Run основной цикл hub до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.updateGauge()
			close(h.done)
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.updateGauge()
			h.log.Info("WebSocket client connected: user=%s, total=%d", client.userID, total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.updateGauge()
			h.log.Info("WebSocket client disconnected: user=%s, total=%d", client.userID, total)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Буфер клиента переполнен - отключаем
					close(client.send)
					delete(h.clients, client)
					h.log.Warn("WebSocket client send buffer full, dropping: user=%s", client.userID)
				}
			}
			h.mu.Unlock()
			h.updateGauge()
		}
	}
}

// Broadcast отправляет сообщение всем клиентам, не блокируясь
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("WebSocket broadcast channel full, dropping message")
	}
}

// Register добавляет клиента. false, если hub уже остановлен
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister удаляет клиента; после остановки hub ничего не делает
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount количество подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) updateGauge() {
	if h.gauge != nil {
		h.gauge.Set(float64(h.ClientCount()))
	}
}

// Client соединение администратора
type Client struct {
	userID string
	send   chan []byte
}

// NewClient создает клиента
func NewClient(userID string) *Client {
	return &Client{
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

// Send канал исходящих сообщений; закрывается hub при отключении
func (c *Client) Send() <-chan []byte {
	return c.send
}
