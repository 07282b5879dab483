package core

type SessionID string

// Session binds a connection id and its transport endpoint.
// This is what a room stores and fans out to.
type Session interface {
	ID() SessionID
	Signal() SignalConnection
}
