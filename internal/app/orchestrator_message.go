package app

import (
	"fmt"
	"strings"

	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// newMessageID is unique for the process lifetime: a millisecond clock plus
// a random suffix.
func newMessageID() domain.MessageID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return domain.MessageID(fmt.Sprintf("msg-%d-%s", now().UnixMilli(), suffix))
}

// memberRoom resolves the room a sender claims to post into.
func (o *Orchestrator) memberRoom(sid core.SessionID, topic string) (*core.Room, error) {
	room, ok := o.Rooms.Get(domain.Topic(topic))
	if !ok {
		return nil, ErrRoomNotFound
	}
	if _, ok := room.Member(sid); !ok {
		return nil, ErrNotMember
	}
	return room, nil
}

// SendMessage relays a text message to the whole room, sender included, and
// opens a poll when the message is flagged as a question or an answer.
func (o *Orchestrator) SendMessage(sid core.SessionID, req MessageRequest) error {
	if err := check(req); err != nil {
		return err
	}
	team, err := domain.ParseTeam(req.Team)
	if err != nil {
		return invalid(err)
	}
	room, err := o.memberRoom(sid, req.Topic)
	if err != nil {
		return err
	}

	text := req.Text
	if o.Censor != nil {
		text = o.Censor.Censor(text)
	}

	msg := MessagePayload{
		ID:         newMessageID(),
		Text:       text,
		Team:       team,
		Username:   req.Username,
		Timestamp:  now().Format(timeLayout),
		IsQuestion: req.IsQuestion,
		IsAnswer:   req.IsAnswer,
	}
	if kind, ok := domain.KindOf(req.IsQuestion, req.IsAnswer); ok {
		poll := o.Polls.Open(room, kind, team, req.Username, text)
		msg.PollID = &poll.ID
	}
	log.Debug().Str("module", "app.orch").Str("topic", req.Topic).Str("id", string(msg.ID)).Msg("message relayed")
	o.broadcast(room, "", EventReceiveMessage, msg)
	return nil
}

// SendVoiceMessage relays a voice reference to everyone but the sender.
func (o *Orchestrator) SendVoiceMessage(sid core.SessionID, req VoiceRequest) error {
	if err := check(req); err != nil {
		return err
	}
	team, err := domain.ParseTeam(req.Team)
	if err != nil {
		return invalid(err)
	}
	room, err := o.memberRoom(sid, req.Topic)
	if err != nil {
		return err
	}
	o.broadcast(room, sid, EventReceiveVoiceMessage, VoicePayload{
		AudioURL:  req.AudioURL,
		Team:      team,
		Username:  req.Username,
		Timestamp: now().Format(timeLayout),
	})
	return nil
}
