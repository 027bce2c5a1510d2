package brackets

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHubServer(t *testing.T, hub *Hub, room string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 8), Room: room}
		if !hub.Join(c) {
			conn.Close()
			return
		}
		go c.WritePump()
		go c.ReadPump()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHub_BroadcastStandings(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run(ctx)

	srv := startHubServer(t, hub, RoomForStage(5))
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.RoomSize("stage_5") == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.BroadcastStandings(5, []string{"Delta", "Alpha"}))
	require.NoError(t, hub.BroadcastStandings(6, "other room"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string   `json:"type"`
		Payload []string `json:"payload"`
		RoomID  string   `json:"room_id"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, MessageStandingsUpdated, msg.Type)
	assert.Equal(t, "stage_5", msg.RoomID)
	assert.Equal(t, []string{"Delta", "Alpha"}, msg.Payload)
}

func TestHub_ClientLeavesRoom(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run(ctx)

	srv := startHubServer(t, hub, "stage_1")
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.RoomSize("stage_1") == 1 }, 2*time.Second, 10*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return hub.RoomSize("stage_1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_JoinAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	assert.False(t, hub.Join(&Client{Hub: hub, Send: make(chan []byte, 1), Room: "stage_1"}))
	assert.NoError(t, hub.BroadcastToRoom("stage_1", "ignored"))
}

func TestHub_LogsThroughInjectedLogger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf bytes.Buffer
	hub := NewHub(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	go hub.Run(ctx)

	require.True(t, hub.Join(&Client{Hub: hub, Send: make(chan []byte, 1), Room: "stage_9"}))
	require.Eventually(t, func() bool { return hub.RoomSize("stage_9") == 1 }, 2*time.Second, 10*time.Millisecond)

	assert.Contains(t, buf.String(), "websocket client registered")
	assert.Contains(t, buf.String(), `"room":"stage_9"`)
}
