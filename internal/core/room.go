package core

import (
	"sync"

	"github.com/dkeye/Debate/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// PublishResult reports delivery stats/backpressure to orchestrator.
type PublishResult struct {
	SendTo  int
	Dropped []SessionID
}

// MemberDTO is a read-only view for APIs (no transport fields).
type MemberDTO struct {
	SID      SessionID   `json:"sid"`
	Username string      `json:"username"`
	Team     domain.Team `json:"team"`
}

// Room is a threadsafe in-memory debate room. It owns membership, team
// scores and the reaction index of its messages, all behind one lock.
// It never closes adapter-owned resources.
type Room struct {
	topic domain.Topic

	mu        sync.RWMutex
	members   map[SessionID]memberEntry
	scores    domain.Scores
	reactions *ReactionIndex
	// closed is set once the registry has reclaimed the room; a closed room
	// accepts no new members.
	closed bool
}

func newRoom(topic domain.Topic) *Room {
	return &Room{
		topic:     topic,
		members:   make(map[SessionID]memberEntry),
		reactions: NewReactionIndex(),
	}
}

func (r *Room) Topic() domain.Topic { return r.topic }

func (r *Room) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// Member returns the meta a connection joined with.
func (r *Room) Member(sid SessionID) (domain.Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.members[sid]
	return e.meta, ok
}

func (r *Room) MembersSnapshot() []MemberDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.MapToSlice(r.members, func(sid SessionID, e memberEntry) MemberDTO {
		return MemberDTO{SID: sid, Username: e.meta.Username, Team: e.meta.Team}
	})
}

func (r *Room) Scores() domain.Scores {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scores
}

// ApplyDelta adjusts the team's score and clamps both teams at zero.
// Unknown teams leave the scores untouched.
func (r *Room) ApplyDelta(team domain.Team, delta int) domain.Scores {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch team {
	case domain.Team1:
		r.scores.Team1 += delta
	case domain.Team2:
		r.scores.Team2 += delta
	default:
		log.Warn().Str("module", "core.room").Str("topic", string(r.topic)).Str("team", string(team)).Msg("score delta for unknown team")
		return r.scores
	}
	r.scores.Team1 = max(0, r.scores.Team1)
	r.scores.Team2 = max(0, r.scores.Team2)
	return r.scores
}

// React records the reaction and returns the full reaction state of the
// message. Re-adding an existing reaction changes nothing.
func (r *Room) React(msg domain.MessageID, emoji, username string) domain.Reactions {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reactions.Add(msg, emoji, username)
	return r.reactions.Snapshot(msg)
}

// Broadcast sends data to every member except the given session.
// An empty except delivers to everyone.
func (r *Room) Broadcast(except SessionID, data Frame) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := PublishResult{}
	for sid, m := range r.members {
		if sid == except {
			continue
		}
		if err := m.session.Signal().TrySend(data); err != nil {
			res.Dropped = append(res.Dropped, sid)
			continue
		}
		res.SendTo++
	}
	log.Debug().Str("module", "core.room").Str("topic", string(r.topic)).Str("except", string(except)).Int("sent_to", res.SendTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}

// add inserts or overwrites the member. It reports false when the room was
// reclaimed in the meantime.
func (r *Room) add(s Session, meta domain.Member) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	r.members[s.ID()] = memberEntry{meta: meta, session: s}
	log.Info().Str("module", "core.room").Str("topic", string(r.topic)).Str("sid", string(s.ID())).Str("username", meta.Username).Msg("member added")
	return true
}

func (r *Room) remove(sid SessionID) (domain.Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.members[sid]
	if !ok {
		return domain.Member{}, false
	}
	delete(r.members, sid)
	log.Info().Str("module", "core.room").Str("topic", string(r.topic)).Str("sid", string(sid)).Msg("member removed")
	return e.meta, true
}

// closeIfEmpty marks an empty room closed. Caller holds the registry lock.
func (r *Room) closeIfEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || len(r.members) > 0 {
		return false
	}
	r.closed = true
	return true
}
