package core

import "github.com/dkeye/Debate/internal/domain"

// ReactionIndex maps message -> emoji -> users, keeping users in the order
// they first reacted. It is not safe for concurrent use; Room guards it.
type ReactionIndex struct {
	byMessage map[domain.MessageID]*messageReactions
}

type messageReactions struct {
	order []string
	users map[string][]string
	seen  map[string]map[string]struct{}
}

func NewReactionIndex() *ReactionIndex {
	return &ReactionIndex{byMessage: make(map[domain.MessageID]*messageReactions)}
}

// Add records the reaction and reports whether it was new.
func (ri *ReactionIndex) Add(msg domain.MessageID, emoji, username string) bool {
	mr, ok := ri.byMessage[msg]
	if !ok {
		mr = &messageReactions{
			users: make(map[string][]string),
			seen:  make(map[string]map[string]struct{}),
		}
		ri.byMessage[msg] = mr
	}
	seen, ok := mr.seen[emoji]
	if !ok {
		seen = make(map[string]struct{})
		mr.seen[emoji] = seen
		mr.order = append(mr.order, emoji)
	}
	if _, dup := seen[username]; dup {
		return false
	}
	seen[username] = struct{}{}
	mr.users[emoji] = append(mr.users[emoji], username)
	return true
}

// Snapshot copies the full reaction state of one message.
func (ri *ReactionIndex) Snapshot(msg domain.MessageID) domain.Reactions {
	out := domain.Reactions{}
	mr, ok := ri.byMessage[msg]
	if !ok {
		return out
	}
	for _, emoji := range mr.order {
		out[emoji] = append([]string(nil), mr.users[emoji]...)
	}
	return out
}

func (ri *ReactionIndex) Len() int { return len(ri.byMessage) }
