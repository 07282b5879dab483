package core

import (
	"sort"
	"sync"

	"github.com/dkeye/Debate/internal/domain"
	"github.com/rs/zerolog/log"
)

type RoomInfo struct {
	Topic       domain.Topic  `json:"topic"`
	MemberCount int           `json:"member_count"`
	Scores      domain.Scores `json:"scores"`
}

// Departure describes a connection leaving one room.
type Departure struct {
	Room      *Room
	Member    domain.Member
	Reclaimed bool
}

// RoomRegistry maps a topic to its live room. The registry lock only guards
// the map; room state is guarded per room.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[domain.Topic]*Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[domain.Topic]*Room)}
}

func (rr *RoomRegistry) getOrCreate(topic domain.Topic) (*Room, bool) {
	rr.mu.RLock()
	room, ok := rr.rooms[topic]
	rr.mu.RUnlock()
	if ok {
		return room, false
	}
	rr.mu.Lock()
	defer rr.mu.Unlock()
	if room, ok = rr.rooms[topic]; ok {
		return room, false
	}
	room = newRoom(topic)
	rr.rooms[topic] = room
	log.Info().Str("module", "core.registry").Str("topic", string(topic)).Msg("room created")
	return room, true
}

// Join adds the session to the room of topic, creating it with zero scores
// when absent. created reports whether this join opened the room.
func (rr *RoomRegistry) Join(topic domain.Topic, s Session, meta domain.Member) (room *Room, created bool) {
	for {
		room, created = rr.getOrCreate(topic)
		if room.add(s, meta) {
			return room, created
		}
		// Lost the race against reclamation; the closed room is already
		// out of the map.
	}
}

func (rr *RoomRegistry) Get(topic domain.Topic) (*Room, bool) {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	room, ok := rr.rooms[topic]
	return room, ok
}

// CurrentScores returns the scores of a live room.
func (rr *RoomRegistry) CurrentScores(topic domain.Topic) (domain.Scores, bool) {
	room, ok := rr.Get(topic)
	if !ok {
		return domain.Scores{}, false
	}
	return room.Scores(), true
}

// LeaveRoom removes the session from a single room.
func (rr *RoomRegistry) LeaveRoom(topic domain.Topic, sid SessionID) (Departure, bool) {
	room, ok := rr.Get(topic)
	if !ok {
		return Departure{}, false
	}
	return rr.leave(room, sid)
}

// Leave removes the session from every room it is a member of.
func (rr *RoomRegistry) Leave(sid SessionID) []Departure {
	rr.mu.RLock()
	rooms := make([]*Room, 0, len(rr.rooms))
	for _, room := range rr.rooms {
		rooms = append(rooms, room)
	}
	rr.mu.RUnlock()

	var out []Departure
	for _, room := range rooms {
		if d, ok := rr.leave(room, sid); ok {
			out = append(out, d)
		}
	}
	return out
}

func (rr *RoomRegistry) leave(room *Room, sid SessionID) (Departure, bool) {
	meta, ok := room.remove(sid)
	if !ok {
		return Departure{}, false
	}
	return Departure{Room: room, Member: meta, Reclaimed: rr.reclaim(room)}, true
}

func (rr *RoomRegistry) reclaim(room *Room) bool {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	if !room.closeIfEmpty() {
		return false
	}
	if rr.rooms[room.topic] == room {
		delete(rr.rooms, room.topic)
	}
	log.Info().Str("module", "core.registry").Str("topic", string(room.topic)).Msg("room reclaimed")
	return true
}

// List returns every live room ordered by topic.
func (rr *RoomRegistry) List() []RoomInfo {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	out := make([]RoomInfo, 0, len(rr.rooms))
	for topic, r := range rr.rooms {
		out = append(out, RoomInfo{Topic: topic, MemberCount: r.MemberCount(), Scores: r.Scores()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}
