package app

import (
	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/domain"
	"github.com/rs/zerolog/log"
)

func (o *Orchestrator) JoinDebate(sid core.SessionID, req JoinRequest) error {
	if err := check(req); err != nil {
		return err
	}
	team, err := domain.ParseTeam(req.Team)
	if err != nil {
		return invalid(err)
	}
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return ErrNotMember
	}
	member := domain.NewMember(req.Username, team)
	room, created := o.Rooms.Join(domain.Topic(req.Topic), sess, member)
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("topic", req.Topic).Str("username", req.Username).Bool("created", created).Msg("joined debate")

	switch o.JoinNotice {
	case JoinAnnounce:
		o.broadcast(room, sid, EventUserJoined, MemberPayload{Username: member.Username, Team: member.Team})
	default:
		o.SendTo(sid, EventUpdatePoints, room.Scores())
	}
	return nil
}

// LeaveDebate removes the connection from one room; the connection stays open.
func (o *Orchestrator) LeaveDebate(sid core.SessionID, req LeaveRequest) error {
	if err := check(req); err != nil {
		return err
	}
	d, ok := o.Rooms.LeaveRoom(domain.Topic(req.Topic), sid)
	if !ok {
		return ErrNotMember
	}
	o.depart(sid, d)
	return nil
}

// OnDisconnect drops the connection from every room it joined.
func (o *Orchestrator) OnDisconnect(sid core.SessionID) {
	for _, d := range o.Rooms.Leave(sid) {
		o.depart(sid, d)
	}
	o.Registry.Unbind(sid)
}

func (o *Orchestrator) depart(sid core.SessionID, d core.Departure) {
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("topic", string(d.Room.Topic())).Str("username", d.Member.Username).Bool("reclaimed", d.Reclaimed).Msg("left debate")
	if d.Reclaimed {
		o.Polls.DropRoom(d.Room)
		return
	}
	o.broadcast(d.Room, sid, EventUserLeft, MemberPayload{Username: d.Member.Username, Team: d.Member.Team})
}
