package app

import (
	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/domain"
)

// AddReaction records the reaction and broadcasts the message's full
// reaction state to the room.
func (o *Orchestrator) AddReaction(sid core.SessionID, req ReactionRequest) error {
	if err := check(req); err != nil {
		return err
	}
	room, ok := o.Rooms.Get(domain.Topic(req.Topic))
	if !ok {
		return ErrRoomNotFound
	}
	msg := domain.MessageID(req.MessageID)
	reactions := room.React(msg, req.Emoji, req.Username)
	o.broadcast(room, "", EventReactionUpdate, ReactionPayload{MessageID: msg, Reactions: reactions})
	return nil
}
