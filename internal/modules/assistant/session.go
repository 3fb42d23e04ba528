package assistant

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// session wraps a websocket connection with a write lock. gorilla/websocket
// allows only one concurrent writer per connection, and a session has two:
// the read loop answering messages and the ping ticker keeping it alive.
type session struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn) *session {
	return &session{conn: conn}
}

func (s *session) WriteJSON(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.conn.WriteJSON(v)
}

func (s *session) Ping() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.conn.WriteMessage(websocket.PingMessage, nil)
}

func (s *session) ReadJSON(v any) error {
	return s.conn.ReadJSON(v)
}

func (s *session) SetPongDeadline(d time.Duration) {
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(d))
	})
}

func (s *session) Close() error {
	return s.conn.Close()
}
