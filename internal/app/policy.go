package app

import "github.com/dkeye/Debate/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	MarkSlow
	KickMember
	DropFrame
)

type Policy interface {
	OnBackPressure(room *core.Room, sid core.SessionID) BackpressureAction
}

// SimplePolicy kicks any member whose send buffer is full.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(room *core.Room, sid core.SessionID) BackpressureAction {
	return KickMember
}
