package app

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testClient records every envelope delivered to one mocked connection.
type testClient struct {
	sid    core.SessionID
	signal *mocks.MockSignalConnection

	mu     sync.Mutex
	frames []core.Envelope
}

func newTestClient(t *testing.T, ctrl *gomock.Controller, o *Orchestrator, id string) *testClient {
	t.Helper()
	c := &testClient{sid: core.SessionID(id), signal: mocks.NewMockSignalConnection(ctrl)}
	c.signal.EXPECT().TrySend(gomock.Any()).DoAndReturn(func(f core.Frame) error {
		var env core.Envelope
		require.NoError(t, json.Unmarshal(f, &env))
		c.mu.Lock()
		c.frames = append(c.frames, env)
		c.mu.Unlock()
		return nil
	}).AnyTimes()
	o.Connect(core.NewSession(c.sid, c.signal), nil)
	return c
}

func (c *testClient) events(typ string) []json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []json.RawMessage
	for _, env := range c.frames {
		if env.Type == typ {
			out = append(out, env.Data)
		}
	}
	return out
}

// last decodes the most recent event of typ into v.
func (c *testClient) last(t *testing.T, typ string, v any) {
	t.Helper()
	evs := c.events(typ)
	require.NotEmpty(t, evs, "no %s event", typ)
	require.NoError(t, json.Unmarshal(evs[len(evs)-1], v))
}

func (c *testClient) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = nil
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return NewOrchestrator(nil), ctrl
}
