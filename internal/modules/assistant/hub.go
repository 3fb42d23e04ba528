package assistant

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks active assistant websocket sessions by user. One session per
// user; a new connection displaces the old one.
type Hub struct {
	sessions map[int64]*session
	mutex    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int64]*session),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) *session {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.sessions[userID]; exists && old != nil {
		_ = old.Close()
	}

	s := newSession(conn)
	h.sessions[userID] = s
	return s
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if s, exists := h.sessions[userID]; exists && s != nil {
		_ = s.Close()
		delete(h.sessions, userID)
	}
}

func (h *Hub) SessionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.sessions)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, s := range h.sessions {
		if s != nil {
			_ = s.Close()
		}
		delete(h.sessions, userID)
	}
}
