package core

import "github.com/dkeye/Debate/internal/domain"

type session struct {
	id     SessionID
	signal SignalConnection
}

func NewSession(id SessionID, signal SignalConnection) Session {
	return &session{id: id, signal: signal}
}

func (s *session) ID() SessionID            { return s.id }
func (s *session) Signal() SignalConnection { return s.signal }

// memberEntry pairs per-room meta with the connection it arrived on.
type memberEntry struct {
	meta    domain.Member
	session Session
}
