package assistant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConnPair upgrades a real websocket connection through an httptest
// server and returns both ends.
func newConnPair(t *testing.T) (server *websocket.Conn, client *websocket.Conn, cleanup func()) {
	t.Helper()

	up := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	serverConns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	server = <-serverConns

	return server, client, func() {
		_ = client.Close()
		_ = server.Close()
		srv.Close()
	}
}

// The reply path and the keepalive ticker write to the same connection
// from different goroutines. gorilla/websocket panics on overlapping
// writes, so the session must serialize them.
func TestSession_ConcurrentWritesAreSerialized(t *testing.T) {
	serverConn, clientConn, cleanup := newConnPair(t)
	defer cleanup()

	// Drain the client side so server writes never block. ReadMessage
	// also answers incoming pings.
	go func() {
		for {
			if _, _, err := clientConn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sess := newSession(serverConn)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, sess.WriteJSON(NewReplyFrame("ok")))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, sess.Ping())
			}
		}()
	}
	wg.Wait()
}

func TestHub_SessionCount(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.SessionCount())

	s1c, c1, cleanup1 := newConnPair(t)
	defer cleanup1()
	s2c, _, cleanup2 := newConnPair(t)
	defer cleanup2()

	hub.Register(1, s1c)
	assert.Equal(t, 1, hub.SessionCount())

	// A second connection for the same user displaces the first.
	hub.Register(1, s2c)
	assert.Equal(t, 1, hub.SessionCount())
	_, _, err := c1.ReadMessage()
	assert.Error(t, err, "displaced connection should be closed")

	hub.Unregister(1)
	assert.Equal(t, 0, hub.SessionCount())

	// Unregistering an unknown user is a no-op.
	hub.Unregister(42)
	assert.Equal(t, 0, hub.SessionCount())
}

func TestHub_CloseDropsAllSessions(t *testing.T) {
	hub := NewHub()

	s1, _, cleanup1 := newConnPair(t)
	defer cleanup1()
	s2, _, cleanup2 := newConnPair(t)
	defer cleanup2()

	hub.Register(1, s1)
	hub.Register(2, s2)
	assert.Equal(t, 2, hub.SessionCount())

	hub.Close()
	assert.Equal(t, 0, hub.SessionCount())
}
