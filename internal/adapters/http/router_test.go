package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkeye/Debate/internal/adapters/signal"
	"github.com/dkeye/Debate/internal/app"
	"github.com/dkeye/Debate/internal/config"
	"github.com/dkeye/Debate/internal/core"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*httptest.Server, *app.Orchestrator) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	cfg := &config.Config{
		Mode:       "test",
		Secret:     "test-secret",
		ReadLimit:  32768,
		SendBuffer: 16,
		PingPeriod: time.Minute,
	}
	orch := app.NewOrchestrator(nil)
	srv := httptest.NewServer(SetupRouter(ctx, cfg, orch, signal.NewSessionRateLimiter(5, time.Minute)))
	t.Cleanup(srv.Close)
	return srv, orch
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/signal"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func send(t *testing.T, ws *websocket.Conn, typ string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, ws.WriteJSON(core.Envelope{Type: typ, Data: raw}))
}

// next reads envelopes until one of typ arrives.
func next(t *testing.T, ws *websocket.Conn, typ string) json.RawMessage {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var env core.Envelope
		require.NoError(t, ws.ReadJSON(&env))
		if env.Type == typ {
			return env.Data
		}
	}
}

func TestSignalJoinAndMessage(t *testing.T) {
	srv, _ := newServer(t)
	alice := dial(t, srv)
	bob := dial(t, srv)

	send(t, alice, app.EventJoinDebate, map[string]string{"topic": "ai", "username": "alice", "team": "team1"})
	var scores map[string]int
	require.NoError(t, json.Unmarshal(next(t, alice, app.EventUpdatePoints), &scores))
	require.Equal(t, map[string]int{"team1": 0, "team2": 0}, scores)

	send(t, bob, app.EventJoinDebate, map[string]string{"topic": "ai", "username": "bob", "team": "team2"})
	next(t, bob, app.EventUpdatePoints)

	send(t, alice, app.EventSendMessage, map[string]any{"topic": "ai", "text": "hello", "team": "team1", "username": "alice"})
	var msg app.MessagePayload
	require.NoError(t, json.Unmarshal(next(t, bob, app.EventReceiveMessage), &msg))
	require.Equal(t, "hello", msg.Text)
	require.Equal(t, "alice", msg.Username)
	require.Nil(t, msg.PollID)
}

func TestSignalPingAndBadInput(t *testing.T) {
	srv, _ := newServer(t)
	ws := dial(t, srv)

	send(t, ws, app.EventPing, nil)
	next(t, ws, app.EventPong)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var e app.ErrorPayload
	require.NoError(t, json.Unmarshal(next(t, ws, app.EventError), &e))
	require.Equal(t, "invalid_request", e.Error)

	send(t, ws, app.EventJoinDebate, map[string]string{"topic": "ai", "username": "", "team": "team1"})
	require.NoError(t, json.Unmarshal(next(t, ws, app.EventError), &e))
	require.Equal(t, "invalid_request", e.Error)
}

func TestRoomsEndpoint(t *testing.T) {
	srv, orch := newServer(t)
	ws := dial(t, srv)
	send(t, ws, app.EventJoinDebate, map[string]string{"topic": "climate", "username": "carol", "team": "team2"})
	next(t, ws, app.EventUpdatePoints)
	require.Equal(t, 1, len(orch.Rooms.List()))

	resp, err := http.Get(srv.URL + "/api/rooms/climate")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp404, err := http.Get(srv.URL + "/api/rooms/none")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)
}
