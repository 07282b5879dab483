package signal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkeye/Debate/internal/app"
	"github.com/dkeye/Debate/internal/core"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 5 * time.Second

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Debug().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, sid core.SessionID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		ctl.Orch.OnDisconnect(sid)
		ctl.Limiter.Forget(sid)
		cancel()
		c.Close()
	}()

	pongWait := ctl.opts.PingPeriod * 10 / 9
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				}
				return
			}
			_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
			ctl.handleSignal(ctx, sid, c, data)
		}
	}
}

// decodeAnd unmarshals the event payload and hands it to handle.
func decodeAnd[T any](data json.RawMessage, handle func(T) error) error {
	var req T
	if len(data) == 0 {
		data = []byte("{}")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("%w: %w", app.ErrInvalidRequest, err)
	}
	return handle(req)
}

func (ctl *SignalWSController) handleSignal(ctx context.Context, sid core.SessionID, c *WsSignalConn, data []byte) {
	var env core.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad json")
		ctl.sendError(c, "invalid_request")
		return
	}

	o := ctl.Orch
	var err error
	switch env.Type {
	case app.EventJoinDebate:
		err = decodeAnd(env.Data, func(r app.JoinRequest) error { return o.JoinDebate(sid, r) })
	case app.EventLeaveDebate:
		err = decodeAnd(env.Data, func(r app.LeaveRequest) error { return o.LeaveDebate(sid, r) })
	case app.EventSendMessage:
		err = decodeAnd(env.Data, func(r app.MessageRequest) error { return o.SendMessage(sid, r) })
	case app.EventSendVoiceMessage:
		err = decodeAnd(env.Data, func(r app.VoiceRequest) error { return o.SendVoiceMessage(sid, r) })
	case app.EventVotePoll:
		err = decodeAnd(env.Data, func(r app.VoteRequest) error { return o.VotePoll(sid, r) })
	case app.EventAddReaction:
		err = decodeAnd(env.Data, func(r app.ReactionRequest) error { return o.AddReaction(sid, r) })
	case app.EventCheckFact:
		if !ctl.Limiter.Allow(sid) {
			ctl.sendError(c, "rate_limited")
			return
		}
		// Runs to completion on this connection's read loop; other
		// connections keep going.
		err = decodeAnd(env.Data, func(r app.FactCheckRequest) error { return o.CheckFact(ctx, sid, r) })
	case app.EventPing:
		ctl.sendJSON(c, app.EventPong, nil)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
		ctl.sendError(c, "unknown_event")
	}

	switch {
	case err == nil:
	case errors.Is(err, app.ErrInvalidRequest):
		log.Info().Err(err).Str("module", "signal").Str("sid", string(sid)).Str("type", env.Type).Msg("rejected request")
		ctl.sendError(c, "invalid_request")
	default:
		log.Debug().Err(err).Str("module", "signal").Str("sid", string(sid)).Str("type", env.Type).Msg("ignored request")
	}
}

func (ctl *SignalWSController) sendError(c *WsSignalConn, reason string) {
	ctl.sendJSON(c, app.EventError, app.ErrorPayload{Error: reason})
}

func (ctl *SignalWSController) sendJSON(c *WsSignalConn, typ string, v any) {
	frame, err := core.Encode(typ, v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(frame)
}
