package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/domain"
)

// newConnPair upgrades a real websocket and returns the server side
// wrapped as a RuntimeClient plus the raw dialer side.
func newConnPair(t *testing.T) (*RuntimeClient, *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		serverConns <- conn
	}))
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	dialer, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { dialer.Close() })

	serverConn := <-serverConns
	socket := NewWebSocket(context.Background(), serverConn)
	client := NewClient(context.Background(), socket, "client-1")
	t.Cleanup(client.Close)
	return client, dialer
}

func TestClientDeliversQueuedMessages(t *testing.T) {
	client, dialer := newConnPair(t)

	require.NoError(t, client.Send(context.Background(), []byte("one")))
	require.NoError(t, client.Send(context.Background(), []byte("two")))

	for _, want := range []string{"one", "two"} {
		require.NoError(t, dialer.SetReadDeadline(time.Now().Add(3*time.Second)))
		_, data, err := dialer.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

func TestSendAfterCloseFails(t *testing.T) {
	client, _ := newConnPair(t)

	client.Close()
	err := client.Send(context.Background(), []byte("late"))
	assert.ErrorIs(t, err, domain.ErrClientClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	client, _ := newConnPair(t)

	require.NotPanics(t, func() {
		client.Close()
		client.Close()
	})
}
